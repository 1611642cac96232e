package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResendMailerSendsInvitation(t *testing.T) {
	var got resendRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	m, err := NewResendMailer("re_test", WithURL(srv.URL), WithFrom("Ops <ops@example.com>"))
	require.NoError(t, err)

	err = m.SendInvitation(context.Background(), InvitationEmail{
		To:               "bob@example.com",
		OrganizationName: "Acme <Lawns>",
		Role:             "admin",
		InviteURL:        "https://app.example.com/invite/tok",
		ExpiresAt:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Equal(t, "Bearer re_test", auth)
	require.Equal(t, "Ops <ops@example.com>", got.From)
	require.Equal(t, []string{"bob@example.com"}, got.To)
	require.Equal(t, "You've been invited to join Acme <Lawns>", got.Subject)
	require.Contains(t, got.HTML, "Acme &lt;Lawns&gt;", "organization name is escaped")
	require.Contains(t, got.HTML, "https://app.example.com/invite/tok")
	require.Contains(t, got.Text, "March 1, 2026")
}

func TestResendMailerReportsProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid from"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	m, err := NewResendMailer("re_test", WithURL(srv.URL))
	require.NoError(t, err)

	err = m.SendInvitation(context.Background(), InvitationEmail{To: "bob@example.com"})
	var sendErr *SendError
	require.ErrorAs(t, err, &sendErr)
	require.Equal(t, http.StatusUnprocessableEntity, sendErr.Status)
}

func TestNewResendMailerRequiresKey(t *testing.T) {
	_, err := NewResendMailer("")
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestSubjectFallsBackWithoutOrganizationName(t *testing.T) {
	require.Equal(t, "You've been invited to join the organization", invitationSubject(InvitationEmail{}))
}
