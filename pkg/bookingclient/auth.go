package bookingclient

import (
	"context"
	"net/http"
	"net/url"
)

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Phone     string `json:"telefono,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/registro", "", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges form-encoded credentials for a bearer token. A 401 here
// means bad credentials, not session expiry.
func (c *Client) Login(ctx context.Context, email, password string) (*Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token Token
	if err := c.postForm(ctx, "/auth/login", form, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/perfil", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	FirstName string
	LastName  string
	Phone     string
}

// UpdateProfile sends the changed fields as query parameters, matching the
// backend's signature.
func (c *Client) UpdateProfile(ctx context.Context, token string, upd ProfileUpdate) (*User, error) {
	query := url.Values{}
	if upd.FirstName != "" {
		query.Set("nombre", upd.FirstName)
	}
	if upd.LastName != "" {
		query.Set("apellido", upd.LastName)
	}
	if upd.Phone != "" {
		query.Set("telefono", upd.Phone)
	}

	var user User
	if err := c.do(ctx, http.MethodPut, "/auth/perfil", token, query, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ChangePassword(ctx context.Context, token, current, updated string) error {
	query := url.Values{}
	query.Set("password_actual", current)
	query.Set("password_nueva", updated)
	return c.do(ctx, http.MethodPut, "/auth/cambiar-password", token, query, nil, nil)
}

func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/auth/perfil", token, nil, nil, nil)
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	query := url.Values{}
	query.Set("email", email)
	return c.do(ctx, http.MethodPost, "/auth/solicitar-recuperacion-password", "", query, nil, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	query := url.Values{}
	query.Set("token", token)
	query.Set("nueva_password", newPassword)
	return c.do(ctx, http.MethodPost, "/auth/recuperar-password", "", query, nil, nil)
}

func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/auth/verificar-email/"+url.PathEscape(token), "", nil, nil, nil)
}

func (c *Client) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/reenviar-verificacion", "", nil, body, nil)
}
