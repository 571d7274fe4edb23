// Package controller owns routing and the post-redirect-get cycle: every
// mutation loads the session state, applies a transition, saves and
// redirects back to the single page render.
package controller

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"skybook/internal/session"
	"skybook/internal/view"
	"skybook/pkg/bookingclient"
	"skybook/pkg/cache"
	"skybook/pkg/logger"
)

type Controller struct {
	api      API
	sessions *session.Manager
	badges   cache.Cache
	pollers  Pollers
	renderer *view.Renderer
	logger   logger.Client
}

func New(api API, sessions *session.Manager, badges cache.Cache, pollers Pollers, renderer *view.Renderer, l logger.Client) *Controller {
	return &Controller{
		api:      api,
		sessions: sessions,
		badges:   badges,
		pollers:  pollers,
		renderer: renderer,
		logger:   l,
	}
}

func (ct *Controller) RegisterRoutes(router *gin.Engine) {
	static, err := fs.Sub(view.Static, "static")
	if err == nil {
		router.StaticFS("/static", http.FS(static))
	}

	router.GET("/", ct.Index)

	router.POST("/login", ct.Login)
	router.POST("/registro", ct.RegisterAccount)
	router.POST("/logout", ct.Logout)
	router.POST("/recuperacion", ct.RequestPasswordReset)
	router.POST("/reenviar-verificacion", ct.ResendVerification)
	router.GET("/verificar-email/:token", ct.VerifyEmail)
	router.GET("/recuperar-password/:token", ct.ResetPasswordForm)
	router.POST("/recuperar-password", ct.ResetPassword)

	router.POST("/nav/:view", ct.Navigate)

	router.POST("/buscar", ct.Search)
	router.POST("/vuelos/seleccionar-ida", ct.SelectOutbound)
	router.POST("/vuelos/seleccionar-vuelta", ct.SelectReturn)
	router.POST("/vuelos/reservar", ct.SelectOneWay)
	router.POST("/vuelos/cambiar-ida", ct.ChangeOutbound)
	router.POST("/vuelos/ordenar", ct.SortResults)
	router.POST("/vuelos/informacion", ct.FlightInfo)
	router.POST("/asientos/toggle", ct.ToggleSeat)

	router.POST("/reservas", ct.CreateReservation)
	router.POST("/reservas/:code/pagar", ct.PayReservation)
	router.POST("/reservas/:code/cancelar", ct.CancelReservation)
	router.POST("/pagos", ct.ProcessPayment)
	router.POST("/pagos/tarjetas/:id/eliminar", ct.DeleteCard)
	router.POST("/billetes/:code/detalle", ct.TicketDetail)
	router.POST("/checkin/:code", ct.CheckIn)

	router.POST("/perfil", ct.UpdateProfile)
	router.POST("/perfil/password", ct.ChangePassword)
	router.POST("/perfil/eliminar", ct.DeleteAccount)

	router.GET("/notificaciones/badge", ct.NotificationBadge)
	router.GET("/notificaciones/lista", ct.NotificationList)
	router.POST("/notificaciones/:id/leida", ct.MarkNotificationRead)
	router.POST("/notificaciones/:id/eliminar", ct.DeleteNotification)
	router.POST("/notificaciones/marcar-todas", ct.MarkAllNotificationsRead)
}

// state loads the session for the request, issuing a cookie when absent.
func (ct *Controller) state(c *gin.Context) (*session.State, string) {
	return ct.sessions.Load(c.Request.Context(), c.Writer, c.Request)
}

func (ct *Controller) save(c *gin.Context, sid string, st *session.State) {
	if err := ct.sessions.Save(c.Request.Context(), sid, st); err != nil {
		ct.logger.Error("session save failed",
			logger.Field{Key: "sid", Value: sid},
			logger.Field{Key: "error", Value: err.Error()},
		)
	}
}

func (ct *Controller) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// fail records an API failure as a toast. A 401 anywhere past login means
// the token expired: the session is reset and the user lands back on the
// login page with an explanation.
func (ct *Controller) fail(c *gin.Context, sid string, st *session.State, err error, fallback string) {
	if bookingclient.IsUnauthorized(err) {
		ct.expire(c, sid, st)
		return
	}
	st.Flash("error", bookingclient.Detail(err, fallback))
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

func (ct *Controller) expire(c *gin.Context, sid string, st *session.State) {
	ct.pollers.Stop(sid)
	st.ClearAuth()
	st.Flash("warning", "Tu sesión ha expirado. Inicia sesión de nuevo.")
	ct.save(c, sid, st)
	ct.redirectHome(c)
}

// authed gates handlers that need a token. Anonymous posts bounce to the
// login page without touching the backend.
func (ct *Controller) authed(c *gin.Context) (*session.State, string, bool) {
	st, sid := ct.state(c)
	if st.Token == "" {
		ct.redirectHome(c)
		return st, sid, false
	}
	return st, sid, true
}
