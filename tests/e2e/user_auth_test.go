package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

type ProfileResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

func Test_Signup_Login_Profile(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	access, user := signupAndLogin(t, c, ctx)

	//GET /api/profile はbearer必須
	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/profile", "", nil)
	requireStatus(t, resp, http.StatusUnauthorized, body)

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/profile", access, nil)
	requireStatus(t, resp, http.StatusOK, body)

	var prof ProfileResponse
	if err := json.Unmarshal(body, &prof); err != nil {
		t.Fatalf("json.Unmarshal(ProfileResponse) failed: %v body=%s", err, string(body))
	}
	if prof.UserID != user.ID {
		t.Fatalf("profile userId=%d want=%d", prof.UserID, user.ID)
	}
}

func Test_Signup_DuplicateEmail(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	email := uniqueEmail("dup")
	req := SignupRequest{
		Name:            "E2E User",
		Email:           email,
		Password:        "password-e2e",
		ConfirmPassword: "password-e2e",
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/signup", "", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusCreated, body)

	//同じemailの2回目は409
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/api/signup", "", mustMarshal(t, req))
	requireStatus(t, resp, http.StatusConflict, body)
}

func Test_Signup_ValidationMessages(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  SignupRequest
		want string
	}{
		{
			name: "missing name",
			req:  SignupRequest{Email: uniqueEmail("v"), Password: "password1", ConfirmPassword: "password1"},
			want: "Name is required",
		},
		{
			name: "bad email",
			req:  SignupRequest{Name: "A", Email: "nope", Password: "password1", ConfirmPassword: "password1"},
			want: "Valid email is required",
		},
		{
			name: "short password",
			req:  SignupRequest{Name: "A", Email: uniqueEmail("v"), Password: "short", ConfirmPassword: "short"},
			want: "Password must be at least 8 characters",
		},
		{
			name: "mismatch",
			req:  SignupRequest{Name: "A", Email: uniqueEmail("v"), Password: "password1", ConfirmPassword: "password2"},
			want: "Passwords do not match",
		},
	}

	for _, tc := range cases {
		resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/signup", "", mustMarshal(t, tc.req))
		requireStatus(t, resp, http.StatusBadRequest, body)

		var msg MessageResponse
		if err := json.Unmarshal(body, &msg); err != nil {
			t.Fatalf("%s: json.Unmarshal failed: %v body=%s", tc.name, err, string(body))
		}
		if msg.Message != tc.want {
			t.Fatalf("%s: message=%q want=%q", tc.name, msg.Message, tc.want)
		}
	}
}

func Test_Login_WrongPassword(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	email := uniqueEmail("wrongpw")
	signup := SignupRequest{
		Name:            "E2E User",
		Email:           email,
		Password:        "password-e2e",
		ConfirmPassword: "password-e2e",
	}
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/signup", "", mustMarshal(t, signup))
	requireStatus(t, resp, http.StatusCreated, body)

	login := LoginRequest{Email: email, Password: "not-the-password"}
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/api/login", "", mustMarshal(t, login))
	requireStatus(t, resp, http.StatusUnauthorized, body)
}
