package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skybook/internal/session"
	"skybook/internal/view"
	"skybook/pkg/bookingclient"
	"skybook/pkg/validate"
)

// Login validates locally first; invalid input never reaches the backend.
// A 401 here is wrong credentials, not an expired session.
func (ct *Controller) Login(c *gin.Context) {
	st, sid := ct.state(c)
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	errs := map[string]string{}
	if r := validate.Email(email); !r.Valid {
		errs["email"] = r.Message
	}
	if r := validate.Password(password); !r.Valid {
		errs["password"] = r.Message
	}
	if len(errs) > 0 {
		ct.renderAuth(c, sid, st, &view.AuthData{ActiveTab: "login", Email: email, FieldErrors: errs})
		return
	}

	token, err := ct.api.Login(c.Request.Context(), email, password)
	if err != nil {
		st.Flash("error", bookingclient.Detail(err, "Credenciales incorrectas"))
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	user, err := ct.api.Profile(c.Request.Context(), token.AccessToken)
	if err != nil {
		st.Flash("error", bookingclient.Detail(err, "No se pudo cargar el perfil"))
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	st.Token = token.AccessToken
	st.User = user
	st.Navigate(session.ViewHome)
	st.Flash("success", "Bienvenido, "+user.FirstName)
	ct.pollers.Start(sid, st.Token)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func (ct *Controller) RegisterAccount(c *gin.Context) {
	st, sid := ct.state(c)
	email := strings.TrimSpace(c.PostForm("email"))
	req := bookingclient.RegisterRequest{
		Email:     email,
		Password:  c.PostForm("password"),
		FirstName: strings.TrimSpace(c.PostForm("nombre")),
		LastName:  strings.TrimSpace(c.PostForm("apellido")),
		Phone:     strings.TrimSpace(c.PostForm("telefono")),
	}

	errs := map[string]string{}
	if r := validate.Name(req.FirstName); !r.Valid {
		errs["nombre"] = r.Message
	}
	if r := validate.Name(req.LastName); !r.Valid {
		errs["apellido"] = r.Message
	}
	if r := validate.Email(req.Email); !r.Valid {
		errs["email"] = r.Message
	}
	if r := validate.Password(req.Password); !r.Valid {
		errs["password"] = r.Message
	}
	if r := validate.Phone(req.Phone); !r.Valid {
		errs["telefono"] = r.Message
	}
	if len(errs) > 0 {
		ct.renderAuth(c, sid, st, &view.AuthData{ActiveTab: "registro", Email: email, FieldErrors: errs})
		return
	}

	if _, err := ct.api.Register(c.Request.Context(), req); err != nil {
		st.Flash("error", bookingclient.Detail(err, "No se pudo crear la cuenta"))
		ct.save(c, sid, st)
		ct.redirectHome(c)
		return
	}

	st.FlashFor("success", "Cuenta creada. Revisa tu email para verificarla.", 6000)
	ct.save(c, sid, st)
	c.Redirect(http.StatusSeeOther, "/?tab=login")
}

func (ct *Controller) Logout(c *gin.Context) {
	st, sid := ct.state(c)
	ct.pollers.Stop(sid)
	st.ClearAuth()
	if err := ct.sessions.Delete(c.Request.Context(), sid); err != nil {
		ct.logger.Warn("session delete failed")
	}
	ct.redirectHome(c)
}

// RequestPasswordReset answers the same way whether or not the account
// exists.
func (ct *Controller) RequestPasswordReset(c *gin.Context) {
	st, sid := ct.state(c)
	email := strings.TrimSpace(c.PostForm("email"))
	if r := validate.Email(email); !r.Valid {
		ct.renderAuth(c, sid, st, &view.AuthData{ActiveTab: "login", Email: email, FieldErrors: map[string]string{"email": r.Message}})
		return
	}
	if err := ct.api.RequestPasswordReset(c.Request.Context(), email); err != nil && bookingclient.IsUnauthorized(err) {
		ct.expire(c, sid, st)
		return
	}
	st.FlashFor("info", "Si el email existe, recibirás instrucciones para restablecer tu contraseña.", 6000)
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func (ct *Controller) ResendVerification(c *gin.Context) {
	st, sid := ct.state(c)
	email := strings.TrimSpace(c.PostForm("email"))
	if r := validate.Email(email); !r.Valid {
		ct.renderAuth(c, sid, st, &view.AuthData{ActiveTab: "login", Email: email, FieldErrors: map[string]string{"email": r.Message}})
		return
	}
	if err := ct.api.ResendVerification(c.Request.Context(), email); err != nil {
		st.Flash("error", bookingclient.Detail(err, "No se pudo reenviar el email"))
	} else {
		st.Flash("success", "Email de verificación reenviado")
	}
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// VerifyEmail handles the deep link from the verification email.
func (ct *Controller) VerifyEmail(c *gin.Context) {
	token := c.Param("token")
	page := &view.TokenPageData{Kind: "verificar-email", Token: token}
	if err := ct.api.VerifyEmail(c.Request.Context(), token); err != nil {
		page.Failed = true
		page.Message = bookingclient.Detail(err, "El enlace de verificación no es válido o ha expirado")
	} else {
		page.Done = true
		page.Message = "Email verificado correctamente. Ya puedes iniciar sesión."
	}
	ct.renderTokenPage(c, page)
}

func (ct *Controller) ResetPasswordForm(c *gin.Context) {
	ct.renderTokenPage(c, &view.TokenPageData{Kind: "recuperar-password", Token: c.Param("token")})
}

func (ct *Controller) ResetPassword(c *gin.Context) {
	token := c.PostForm("token")
	password := c.PostForm("password")
	page := &view.TokenPageData{Kind: "recuperar-password", Token: token}

	if r := validate.Password(password); !r.Valid {
		page.Message = r.Message
		ct.renderTokenPage(c, page)
		return
	}
	if password != c.PostForm("password_confirm") {
		page.Message = "Las contraseñas no coinciden"
		ct.renderTokenPage(c, page)
		return
	}

	if err := ct.api.ResetPassword(c.Request.Context(), token, password); err != nil {
		page.Failed = true
		page.Message = bookingclient.Detail(err, "El enlace de recuperación no es válido o ha expirado")
	} else {
		page.Done = true
		page.Message = "Contraseña restablecida correctamente."
	}
	ct.renderTokenPage(c, page)
}

func (ct *Controller) UpdateProfile(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}

	upd := bookingclient.ProfileUpdate{
		FirstName: strings.TrimSpace(c.PostForm("nombre")),
		LastName:  strings.TrimSpace(c.PostForm("apellido")),
		Phone:     strings.TrimSpace(c.PostForm("telefono")),
	}

	errs := map[string]string{}
	if r := validate.Name(upd.FirstName); !r.Valid {
		errs["nombre"] = r.Message
	}
	if r := validate.Name(upd.LastName); !r.Valid {
		errs["apellido"] = r.Message
	}
	if r := validate.Phone(upd.Phone); !r.Valid {
		errs["telefono"] = r.Message
	}
	if len(errs) > 0 {
		ct.renderPage(c, sid, st, func(data *view.PageData) {
			if data.Profile != nil {
				data.Profile.FieldErrors = errs
			}
		})
		return
	}

	user, err := ct.api.UpdateProfile(c.Request.Context(), st.Token, upd)
	if err != nil {
		ct.fail(c, sid, st, err, "No se pudo actualizar el perfil")
		return
	}
	st.User = user
	st.Flash("success", "Perfil actualizado")
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func (ct *Controller) ChangePassword(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}

	current := c.PostForm("password_actual")
	updated := c.PostForm("password_nueva")
	if r := validate.Password(updated); !r.Valid {
		ct.renderPage(c, sid, st, func(data *view.PageData) {
			if data.Profile != nil {
				data.Profile.FieldErrors = map[string]string{"password_nueva": r.Message}
			}
		})
		return
	}

	if err := ct.api.ChangePassword(c.Request.Context(), st.Token, current, updated); err != nil {
		ct.fail(c, sid, st, err, "No se pudo cambiar la contraseña")
		return
	}
	st.Flash("success", "Contraseña actualizada")
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func (ct *Controller) DeleteAccount(c *gin.Context) {
	st, sid, ok := ct.authed(c)
	if !ok {
		return
	}

	if err := ct.api.DeleteAccount(c.Request.Context(), st.Token); err != nil {
		ct.fail(c, sid, st, err, "No se pudo eliminar la cuenta")
		return
	}
	ct.pollers.Stop(sid)
	st.ClearAuth()
	st.Flash("info", "Tu cuenta ha sido eliminada")
	ct.save(c, sid, st)
	ct.redirectHome(c)
}
