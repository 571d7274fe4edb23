package view

// One template set, one define block per component. Markup mirrors the
// backend's locale; all interpolation goes through html/template escaping.
const templateText = `
{{define "page"}}<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>SkyBook</title>
  <link rel="stylesheet" href="/static/app.css"/>
</head>
<body{{if .User}} class="home-background"{{end}}>
  <div id="toast-container">
    {{range .Flashes}}<div class="toast toast-{{.Kind}}" data-duration="{{.DurationMS}}">
      <span class="toast-message">{{.Message}}</span>
      <button class="toast-close" aria-label="Cerrar">&times;</button>
    </div>{{end}}
  </div>
  <div id="app">
    {{if .TokenPage}}{{template "token_page" .TokenPage}}{{else if not .User}}{{template "auth" .}}{{else}}{{template "chrome" .}}{{end}}
  </div>
  <script src="/static/app.js"></script>
</body>
</html>{{end}}

{{define "auth"}}
<div class="auth-page">
  <h1>SkyBook</h1>
  {{$tab := .Auth.ActiveTab}}
  <div class="auth-tabs">
    <form method="get" action="/"><button class="auth-tab-modern{{if eq $tab "login"}} active{{end}}" name="tab" value="login">Iniciar Sesión</button></form>
    <form method="get" action="/"><button class="auth-tab-modern{{if eq $tab "registro"}} active{{end}}" name="tab" value="registro">Registrarse</button></form>
  </div>
  {{if eq $tab "registro"}}
  <form id="registro-form" method="post" action="/registro">
    <div class="form-group">
      <label for="reg-nombre">Nombre</label>
      <input id="reg-nombre" name="nombre" type="text"/>
      {{with index .Auth.FieldErrors "nombre"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <div class="form-group">
      <label for="reg-apellido">Apellido</label>
      <input id="reg-apellido" name="apellido" type="text"/>
      {{with index .Auth.FieldErrors "apellido"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <div class="form-group">
      <label for="reg-email">Email</label>
      <input id="reg-email" name="email" type="text" value="{{.Auth.Email}}"/>
      {{with index .Auth.FieldErrors "email"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <div class="form-group">
      <label for="reg-password">Contraseña</label>
      <input id="reg-password" name="password" type="password"/>
      {{with index .Auth.FieldErrors "password"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <div class="form-group">
      <label for="reg-telefono">Teléfono (opcional)</label>
      <input id="reg-telefono" name="telefono" type="tel"/>
      {{with index .Auth.FieldErrors "telefono"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <button type="submit" class="btn-primary">Crear Cuenta</button>
  </form>
  {{else}}
  <form id="login-form" method="post" action="/login">
    <div class="form-group">
      <label for="login-email">Email</label>
      <input id="login-email" name="email" type="text" value="{{.Auth.Email}}"/>
      {{with index .Auth.FieldErrors "email"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <div class="form-group">
      <label for="login-password">Contraseña</label>
      <input id="login-password" name="password" type="password"/>
      {{with index .Auth.FieldErrors "password"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <button type="submit" class="btn-primary">Entrar</button>
  </form>
  <form method="post" action="/recuperacion" class="inline-form">
    <input name="email" type="hidden" value="{{.Auth.Email}}"/>
    <button id="forgot-password-link" class="link-btn">¿Olvidaste tu contraseña?</button>
  </form>
  <form method="post" action="/reenviar-verificacion" class="inline-form">
    <input name="email" type="hidden" value="{{.Auth.Email}}"/>
    <button id="resend-verification-link" class="link-btn">Reenviar email de verificación</button>
  </form>
  {{end}}
</div>
{{end}}

{{define "token_page"}}
<div class="token-page">
  {{if eq .Kind "verificar-email"}}
    <h2>Verificación de Email</h2>
    {{if .Done}}
      <p class="token-ok">✅ {{.Message}}</p>
      <form method="get" action="/"><button id="btn-ir-login" class="btn-primary">Ir a Iniciar Sesión</button></form>
    {{else}}
      <p class="token-fail">{{.Message}}</p>
      <form method="get" action="/"><button id="btn-volver" class="btn-secondary">Volver</button></form>
    {{end}}
  {{else}}
    <h2>Restablecer Contraseña</h2>
    {{if .Done}}
      <p class="token-ok">✅ {{.Message}}</p>
      <form method="get" action="/"><button class="btn-primary">Ir a Iniciar Sesión</button></form>
    {{else if .Failed}}
      <p class="token-fail">{{.Message}}</p>
      <form method="get" action="/"><button class="btn-secondary">Volver</button></form>
    {{else}}
      <form id="reset-password-form" method="post" action="/recuperar-password">
        <input type="hidden" name="token" value="{{.Token}}"/>
        <div class="form-group">
          <label for="reset-password">Nueva contraseña</label>
          <input id="reset-password" name="password" type="password"/>
        </div>
        <div class="form-group">
          <label for="reset-password-confirm">Confirmar contraseña</label>
          <input id="reset-password-confirm" name="password_confirm" type="password"/>
        </div>
        {{with .Message}}<div class="field-error">{{.}}</div>{{end}}
        <button type="submit" class="btn-primary">Restablecer</button>
      </form>
    {{end}}
  {{end}}
</div>
{{end}}

{{define "chrome"}}
<nav class="navbar">
  <form method="post" action="/nav/home" class="inline-form"><button class="navbar-brand">✈️ SkyBook</button></form>
  <div class="nav-links">
    <form method="post" action="/nav/buscar" class="inline-form"><button class="nav-btn{{if eq .View "buscar"}} active{{end}}" data-view="buscar">Buscar Vuelos</button></form>
    <form method="post" action="/nav/reservas" class="inline-form"><button class="nav-btn{{if eq .View "reservas"}} active{{end}}" data-view="reservas">Mis Reservas</button></form>
    <form method="post" action="/nav/billetes" class="inline-form"><button class="nav-btn{{if eq .View "billetes"}} active{{end}}" data-view="billetes">Mis Billetes</button></form>
    <form method="post" action="/nav/perfil" class="inline-form"><button class="nav-btn{{if eq .View "perfil"}} active{{end}}" data-view="perfil">Perfil</button></form>
  </div>
  <div class="nav-actions">
    <button class="btn-notifications" id="btn-notificaciones" aria-label="Notificaciones">🔔
      <span class="notifications-badge" id="notif-badge"{{if not .Badge}} style="display: none;"{{end}}>{{if gt .Badge 99}}99+{{else}}{{.Badge}}{{end}}</span>
    </button>
    <div id="notif-dropdown" class="notif-dropdown" style="display: none;">
      <div class="notif-header">
        <span>Notificaciones</span>
        <button id="btn-marcar-todas">Marcar todas leídas</button>
      </div>
      <div id="notif-list"></div>
    </div>
    <form method="post" action="/logout" class="inline-form"><button id="logout-btn" class="nav-btn">Salir</button></form>
  </div>
</nav>
<div class="main-container"><div class="content-wrapper">
  {{if eq .View "buscar"}}{{template "buscar" .}}
  {{else if eq .View "reservas"}}{{template "reservas" .}}
  {{else if eq .View "billetes"}}{{template "billetes" .}}
  {{else if eq .View "perfil"}}{{template "perfil" .}}
  {{else if eq .View "reservar"}}{{template "reservar" .}}
  {{else if eq .View "pagar"}}{{template "pagar" .}}
  {{else}}{{template "home" .}}{{end}}
</div></div>
{{end}}

{{define "home"}}
<div class="home-view">
  <h2>Hola, {{.User.FirstName}} 👋</h2>
  <p>¿A dónde viajamos hoy?</p>
  <div class="action-cards">
    <form method="post" action="/nav/buscar" class="inline-form"><button class="action-card" data-view="buscar">🔍 Buscar Vuelos</button></form>
    <form method="post" action="/nav/reservas" class="inline-form"><button class="action-card" data-view="reservas">🧾 Mis Reservas</button></form>
    <form method="post" action="/nav/billetes" class="inline-form"><button class="action-card" data-view="billetes">🎫 Mis Billetes</button></form>
  </div>
</div>
{{end}}

{{define "buscar"}}
<div class="search-view">
  <h2>Buscar Vuelos</h2>
  <form id="buscar-form" method="post" action="/buscar">
    {{$p := .Search.Params}}
    <div class="radio-row">
      <label><input type="radio" name="trip_type" value="round_trip"{{if or (not $p) $p.RoundTrip}} checked{{end}}/> Ida y vuelta</label>
      <label><input type="radio" name="trip_type" value="one_way"{{if and $p (not $p.RoundTrip)}} checked{{end}}/> Solo ida</label>
    </div>
    <div class="radio-row">
      <label><input type="radio" name="search_type" value="tarifas"{{if or (not $p) (eq $p.SearchType "tarifas")}} checked{{end}}/> Mejores tarifas</label>
      <label><input type="radio" name="search_type" value="horarios"{{if and $p (eq $p.SearchType "horarios")}} checked{{end}}/> Por horarios</label>
    </div>
    <div class="form-row">
      <div class="form-group">
        <label for="ciudad-origen">Origen</label>
        <select id="ciudad-origen" name="origen">
          <option value="">Seleccione origen</option>
          {{range .Search.Cities}}<option value="{{.IATACode}}"{{if and $p (eq $p.Origin .IATACode)}} selected{{end}}>{{.Name}}, {{.Country}}</option>{{end}}
        </select>
      </div>
      <div class="form-group">
        <label for="ciudad-destino">Destino</label>
        <select id="ciudad-destino" name="destino">
          <option value="">Seleccione destino</option>
          {{range .Search.Cities}}<option value="{{.IATACode}}"{{if and $p (eq $p.Destination .IATACode)}} selected{{end}}>{{.Name}}, {{.Country}}</option>{{end}}
        </select>
      </div>
    </div>
    <div class="form-row">
      <div class="form-group">
        <label for="fecha-salida">Fecha de salida</label>
        <input id="fecha-salida" name="fecha_salida" type="date" value="{{if $p}}{{$p.Date}}{{end}}"/>
      </div>
      <div class="form-group" id="fecha-regreso-group">
        <label for="fecha-regreso">Fecha de regreso</label>
        <input id="fecha-regreso" name="fecha_regreso" type="date" value="{{if $p}}{{$p.ReturnDate}}{{end}}"/>
      </div>
      <div class="form-group">
        <label for="pasajeros">Pasajeros</label>
        <select id="pasajeros" name="pasajeros">
          {{range $n := .PassengerOptions}}<option value="{{$n}}"{{if and $p (eq $p.Passengers $n)}} selected{{end}}>{{$n}}</option>{{end}}
        </select>
      </div>
    </div>
    <div class="form-row">
      <div class="form-group">
        <label for="clase">Clase</label>
        <select id="clase" name="clase">
          <option value="ECONOMICA">Económica</option>
          <option value="EJECUTIVA"{{if and $p (eq $p.Class "EJECUTIVA")}} selected{{end}}>Ejecutiva</option>
          <option value="PRIMERA"{{if and $p (eq $p.Class "PRIMERA")}} selected{{end}}>Primera</option>
        </select>
      </div>
      <div class="form-group">
        <label for="aerolinea-filter">Aerolínea</label>
        <select id="aerolinea-filter" name="aerolinea">
          <option value="">Todas las aerolíneas</option>
          {{range .Search.Airlines}}{{if .Active}}<option value="{{.IATACode}}"{{if and $p (eq $p.AirlineCode .IATACode)}} selected{{end}}>{{.Name}}</option>{{end}}{{end}}
        </select>
      </div>
      <div class="form-group">
        <label for="horario-salida">Horario de salida</label>
        <select id="horario-salida" name="horario_salida">
          <option value="all">Cualquiera</option>
          <option value="manana"{{if and $p (eq $p.DepartureSlot "manana")}} selected{{end}}>Mañana</option>
          <option value="tarde"{{if and $p (eq $p.DepartureSlot "tarde")}} selected{{end}}>Tarde</option>
          <option value="noche"{{if and $p (eq $p.DepartureSlot "noche")}} selected{{end}}>Noche</option>
        </select>
      </div>
      <div class="form-group">
        <label for="precio-max">Precio máximo</label>
        <input id="precio-max" name="precio_max" type="number" min="0" step="0.01"{{if and $p $p.MaxPrice}} value="{{$p.MaxPrice}}"{{end}}/>
      </div>
      <div class="form-group">
        <label for="escalas">Escalas</label>
        <select id="escalas" name="escalas">
          <option value="all">Todas</option>
          <option value="direct"{{if and $p $p.DirectOnly}} selected{{end}}>Solo directos</option>
        </select>
      </div>
    </div>
    <button type="submit" class="btn-primary">Buscar</button>
  </form>
  {{with .Search.Info}}{{template "vuelo_info" .}}{{end}}
  {{with .Search.Results}}{{template "results" .}}{{end}}
</div>
{{end}}

{{define "vuelo_info"}}
<div class="vuelo-info-panel">
  <h3>✈️ Información del Vuelo {{.Flight.FlightNumber}}</h3>
  <div class="info-grid">
    <div class="info-item"><span>Aerolínea</span><strong>{{.Flight.Airline}}</strong></div>
    <div class="info-item"><span>Ruta</span><strong>{{.Flight.Origin}} → {{.Flight.Destination}}</strong></div>
    <div class="info-item"><span>Salida</span><strong>{{.Flight.DepartureTime}}</strong></div>
    <div class="info-item"><span>Llegada</span><strong>{{.Flight.ArrivalTime}}</strong></div>
    <div class="info-item"><span>Duración</span><strong>{{.DurationFmt}}</strong></div>
    <div class="info-item"><span>Estado</span><strong>{{if .Flight.Active}}✅ Activo{{else}}❌ Inactivo{{end}}</strong></div>
  </div>
  {{if .Fares}}
  <h4>💰 Tarifas Disponibles</h4>
  <div class="tarifas-list">
    {{range .Fares}}<div class="tarifa-item"><span>{{.Class}}</span><strong>{{.PriceFmt}}</strong></div>{{end}}
  </div>
  {{end}}
  {{with .Status}}
  {{if .Message}}
  <p class="info-note">{{.Message}}</p>
  {{else}}
  <h4>📅 Información del {{.Date}}</h4>
  {{with .Gate}}<div class="info-item"><span>Puerta</span><strong>{{.}}</strong></div>{{end}}
  {{with .AvailableSeats}}
  <div class="asientos-disponibles">
    <div class="info-item"><span>Económica</span><strong>{{.Economy}} asientos</strong></div>
    <div class="info-item"><span>Ejecutiva</span><strong>{{.Business}} asientos</strong></div>
    <div class="info-item"><span>Primera Clase</span><strong>{{.First}} asientos</strong></div>
  </div>
  {{end}}
  {{end}}
  {{end}}
</div>
{{end}}

{{define "results"}}
<div id="vuelos-results">
  {{if .Outbound}}
  <div class="vuelo-ida-summary">
    <h3>✅ Vuelo de ida seleccionado</h3>
    <div class="flight-row">
      <span>{{.Outbound.FlightNumber}} · {{.Outbound.Airline}}</span>
      <span>{{.Outbound.Origin}} → {{.Outbound.Destination}}</span>
      <span>{{.Outbound.Date}} {{.Outbound.DepartureTime}}</span>
      <span>{{.Outbound.PriceFmt}}</span>
    </div>
    <form method="post" action="/vuelos/cambiar-ida" class="inline-form">
      <button id="cambiar-vuelo-ida" class="btn-secondary">Cambiar vuelo de ida</button>
    </form>
    <h3>Seleccione su vuelo de regreso</h3>
  </div>
  {{end}}
  {{if not .Offers}}
  <div class="empty-state">
    <p>No se encontraron vuelos. Intente con otras fechas.</p>
  </div>
  {{else}}
  <div class="results-toolbar">
    <span>{{len .Offers}} vuelo(s) encontrados</span>
    <form method="post" action="/vuelos/ordenar" class="inline-form">
      <select id="sort-results" name="por" onchange="this.form.submit()">
        <option value="">Ordenar por…</option>
        <option value="precio"{{if eq .SortBy "precio"}} selected{{end}}>Precio</option>
        <option value="salida"{{if eq .SortBy "salida"}} selected{{end}}>Hora de salida</option>
        <option value="duracion"{{if eq .SortBy "duracion"}} selected{{end}}>Duración</option>
      </select>
    </form>
  </div>
  {{$phase := .Phase}}
  {{range $i, $offer := .Offers}}
  <div class="flight-card">
    <div class="flight-main">
      <span class="flight-number">{{$offer.FlightNumber}}</span>
      <span class="flight-airline">{{$offer.Airline}}</span>
      <span class="flight-route">{{$offer.Origin}} → {{$offer.Destination}}</span>
      <span class="flight-times">{{$offer.DepartureTime}} – {{$offer.ArrivalTime}}</span>
      <span class="flight-duration">{{$offer.Duration}}</span>
      <span class="flight-class">{{$offer.Class}}</span>
      <span class="flight-seats">{{$offer.AvailableSeats}} asientos</span>
      <span class="flight-price">{{$offer.PriceFmt}}</span>
    </div>
    <form method="post" action="/vuelos/informacion" class="inline-form">
      <input type="hidden" name="numero" value="{{$offer.FlightNumber}}"/>
      <input type="hidden" name="fecha" value="{{$offer.Date}}"/>
      <button class="btn-info-vuelo" aria-label="Información del vuelo">ℹ️</button>
    </form>
    {{if eq $phase "ida"}}
    <form method="post" action="/vuelos/seleccionar-ida" class="inline-form">
      <input type="hidden" name="idx" value="{{$i}}"/>
      <button class="btn-seleccionar-ida">Seleccionar ida</button>
    </form>
    {{else if eq $phase "vuelta"}}
    <form method="post" action="/vuelos/seleccionar-vuelta" class="inline-form">
      <input type="hidden" name="idx" value="{{$i}}"/>
      <button class="btn-reserve">Reservar</button>
    </form>
    {{else}}
    <form method="post" action="/vuelos/reservar" class="inline-form">
      <input type="hidden" name="idx" value="{{$i}}"/>
      <button class="btn-reserve">Reservar</button>
    </form>
    {{end}}
  </div>
  {{end}}
  {{end}}
</div>
{{end}}

{{define "reservar"}}
<div class="reserve-view">
  <h2>{{if .Reserve.RoundTrip}}Reservar Ida y Vuelta{{else}}Reservar Vuelo{{end}}</h2>
  {{range .Reserve.Legs}}
  <div class="reserve-leg">
    <div class="flight-info{{if eq .Index 1}} flight-info-return{{end}}">
      <h3>{{.Label}}</h3>
      <div class="flight-row">
        <span>{{.Offer.FlightNumber}} · {{.Offer.Airline}}</span>
        <span>{{.Offer.Origin}} → {{.Offer.Destination}}</span>
        <span>{{.Offer.Date}} · {{.Offer.DepartureTime}} – {{.Offer.ArrivalTime}}</span>
        <span>{{.Offer.Class}} · {{.Offer.PriceFmt}}</span>
      </div>
    </div>
    {{if .LoadErr}}
    <div class="seatmap-error">Error al cargar mapa de asientos</div>
    {{else}}
    <div class="seats-info">
      <div>{{.Summary.Available}} de {{.Summary.Total}} asientos disponibles</div>
      <div class="seats-needed">Seleccione {{$.Reserve.Passengers}} asiento(s)</div>
    </div>
    <div class="seats-grid">
      {{$leg := .Index}}
      {{range .Rows}}
      <div class="seat-row">
        <span class="row-number">{{.Row}}</span>
        {{range .Seats}}
        {{if .Available}}
        <form method="post" action="/asientos/toggle" class="inline-form">
          <input type="hidden" name="leg" value="{{$leg}}"/>
          <input type="hidden" name="asiento" value="{{.Number}}"/>
          <button class="seat-btn{{if .Selected}} selected{{end}}">{{.Number}}</button>
        </form>
        {{else}}
        <button class="seat-btn disabled" disabled>{{.Number}}</button>
        {{end}}
        {{end}}
      </div>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}
  <div class="reserve-footer">
    <span class="reserve-total">Total: {{.Reserve.TotalFmt}}</span>
    <form method="post" action="/reservas" class="inline-form">
      <button class="btn-primary">Confirmar Reserva</button>
    </form>
  </div>
</div>
{{end}}

{{define "reservas"}}
<div class="reservas-view">
  <div class="section-header">
    <h2>Mis Reservas</h2>
    <span class="badge-count" id="count-reservas">{{len .Reservations}}</span>
  </div>
  {{if not .Reservations}}
  <div class="empty-state">
    <p>No tienes reservas todavía.</p>
    <form method="post" action="/nav/buscar" class="inline-form"><button data-view="buscar" class="btn-primary">Buscar vuelos</button></form>
  </div>
  {{end}}
  {{range .Reservations}}
  <div class="reserva-card">
    <div class="reserva-main">
      <span class="reserva-codigo">{{.Code}}</span>
      <span class="status-badge {{.StatusClass}}">{{.Status}}</span>
      <span class="reserva-fecha">{{.CreatedAt}}</span>
      <span class="reserva-total">{{.TotalFmt}}</span>
    </div>
    <div class="reserva-actions">
      {{if .Payable}}
      <form method="post" action="/reservas/{{.Code}}/pagar" class="inline-form"><button class="btn-pagar">Pagar</button></form>
      {{end}}
      {{if .Cancelable}}
      <form method="post" action="/reservas/{{.Code}}/cancelar" class="inline-form"
            data-confirm="¿Cancelar la reserva {{.Code}}?"
            data-confirm-details="Esta acción no se puede deshacer.">
        <button class="btn-cancel">Cancelar</button>
      </form>
      {{end}}
    </div>
  </div>
  {{end}}
</div>
{{end}}

{{define "billetes"}}
<div class="billetes-view">
  <div class="section-header">
    <h2>Mis Billetes</h2>
    <span class="badge-count" id="count-billetes">{{len .Tickets}}</span>
  </div>
  {{with .CheckIn}}{{template "checkin_result" .}}{{end}}
  {{with .TicketDetail}}{{template "billete_detalle" .}}{{end}}
  {{if not .Tickets}}
  <div class="empty-state"><p>No tienes billetes todavía.</p></div>
  {{end}}
  {{range .Tickets}}
  <div class="billete-card">
    <div class="billete-main">
      <span class="billete-codigo">{{.Code}}</span>
      <span class="status-badge">{{.Status}}</span>
      {{with .Flight}}<span>{{.FlightNumber}} · {{.Origin}} → {{.Destination}} · {{.Date}}</span>{{end}}
      <span>{{.Passenger}}</span>
      <span>{{if eq .DeliveryMethod "EMAIL"}}Correo Electrónico{{else}}Aeropuerto{{end}}</span>
      {{if .CheckedIn}}<span class="checkin-done">✅ Check-in realizado</span>{{end}}
    </div>
    <div class="billete-actions">
      <form method="post" action="/billetes/{{.Code}}/detalle" class="inline-form">
        <button class="btn-detalle">Ver Detalle</button>
      </form>
      {{if .CanCheckIn}}
      <form method="post" action="/checkin/{{.Code}}" class="inline-form"
            data-confirm="¿Realizar Check-in?"
            data-confirm-details="Esta acción confirmará su asistencia al vuelo.">
        <button class="btn-check-in">Check-in</button>
      </form>
      {{end}}
    </div>
  </div>
  {{end}}
</div>
{{end}}

{{define "billete_detalle"}}
<div class="billete-detalle">
  <h3>🎫 Detalles del Billete</h3>
  <div class="detalle-codigo">{{.Ticket.Code}}</div>
  <div class="detalle-section">
    <h4>✈️ Información del Vuelo</h4>
    <div class="detalle-row"><span>Vuelo</span><strong>{{.Flight.FlightNumber}}</strong></div>
    <div class="detalle-row"><span>Aerolínea</span><strong>{{.Flight.Airline}}</strong></div>
    <div class="detalle-row"><span>Ruta</span><strong>{{.Flight.Origin}} → {{.Flight.Destination}}</strong></div>
    <div class="detalle-row"><span>Fecha</span><strong>{{.Flight.Date}}</strong></div>
    <div class="detalle-row"><span>Salida</span><strong>{{.Flight.DepartureTime}}</strong></div>
    <div class="detalle-row"><span>Llegada</span><strong>{{.Flight.ArrivalTime}}</strong></div>
    {{with .Flight.Gate}}<div class="detalle-row"><span>Puerta</span><strong>{{.}}</strong></div>{{end}}
  </div>
  <div class="detalle-section">
    <h4>👤 Pasajero</h4>
    <div class="detalle-row"><span>Nombre</span><strong>{{.Passenger.FirstName}} {{.Passenger.LastName}}</strong></div>
    <div class="detalle-row"><span>Clase</span><strong>{{.Seat.Class}}</strong></div>
    <div class="detalle-row"><span>Asiento</span><strong>{{.Seat.Number}}</strong></div>
  </div>
  <div class="detalle-section">
    <div class="detalle-row"><span>Código de Reserva</span><strong>{{.ReservationCode}}</strong></div>
    <div class="detalle-row"><span>Precio</span><strong>{{.PriceFmt}}</strong></div>
    <div class="detalle-row"><span>Estado</span><strong>{{.Ticket.Status}}</strong></div>
  </div>
</div>
{{end}}

{{define "perfil"}}
<div class="perfil-view">
  <h2>Mi Perfil</h2>
  <form id="perfil-form" method="post" action="/perfil">
    <div class="form-group">
      <label for="perfil-nombre">Nombre</label>
      <input id="perfil-nombre" name="nombre" value="{{.Profile.User.FirstName}}"/>
      {{with index .Profile.FieldErrors "nombre"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <div class="form-group">
      <label for="perfil-apellido">Apellido</label>
      <input id="perfil-apellido" name="apellido" value="{{.Profile.User.LastName}}"/>
      {{with index .Profile.FieldErrors "apellido"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <div class="form-group">
      <label>Email</label>
      <input value="{{.Profile.User.Email}}" disabled/>
    </div>
    <div class="form-group">
      <label for="perfil-telefono">Teléfono</label>
      <input id="perfil-telefono" name="telefono" value="{{.Profile.User.Phone}}"/>
      {{with index .Profile.FieldErrors "telefono"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <button type="submit" class="btn-primary">Guardar Cambios</button>
  </form>
  <h3>Cambiar Contraseña</h3>
  <form method="post" action="/perfil/password">
    <div class="form-group">
      <label for="password-actual">Contraseña actual</label>
      <input id="password-actual" name="password_actual" type="password"/>
    </div>
    <div class="form-group">
      <label for="password-nueva">Contraseña nueva</label>
      <input id="password-nueva" name="password_nueva" type="password"/>
      {{with index .Profile.FieldErrors "password_nueva"}}<div class="field-error">{{.}}</div>{{end}}
    </div>
    <button type="submit" class="btn-secondary">Cambiar</button>
  </form>
  <h3>Historial de Pagos</h3>
  {{if not .Profile.Payments}}
  <p class="empty-historial">No tienes pagos registrados.</p>
  {{else}}
  <table class="historial-pagos">
    <thead><tr><th>Fecha</th><th>Importe</th><th>Estado</th><th>Autorización</th></tr></thead>
    <tbody>
      {{range .Profile.Payments}}
      <tr>
        <td>{{.PaidAt}}</td>
        <td>{{.AmountFmt}}</td>
        <td><span class="status-badge {{.StatusClass}}">{{.Status}}</span></td>
        <td>{{.AuthorizationCode}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  {{end}}
  <form method="post" action="/perfil/eliminar" class="inline-form"
        data-confirm="¿Eliminar tu cuenta?"
        data-confirm-details="Se eliminarán tus datos y no podrás recuperarlos.">
    <button class="btn-danger">Eliminar Cuenta</button>
  </form>
</div>
{{end}}

{{define "pagar"}}
<div class="pagar-view">
  {{if not .Payment.Reservation}}
  <div class="empty-state"><p>No hay reservas pendientes de pago.</p></div>
  {{else}}
  <h2>Pagar Reserva {{.Payment.Reservation.Code}}</h2>
  <div class="pago-total">Total a pagar: <strong>{{.Payment.TotalFmt}}</strong></div>
  <form id="pago-form" method="post" action="/pagos">
    <div class="payment-tabs">
      <label><input type="radio" name="payment_method" value="saved"{{if .Payment.Cards}} checked{{end}}{{if not .Payment.Cards}} disabled{{end}}/> Tarjeta guardada</label>
      <label><input type="radio" name="payment_method" value="new"{{if not .Payment.Cards}} checked{{end}}/> Nueva tarjeta</label>
    </div>
    <div id="saved-cards" class="card-list">
      {{range $i, $card := .Payment.Cards}}
      <div class="card-option">
        <label>
          <input type="radio" name="tarjeta_id" value="{{$card.ID}}"{{if eq $i 0}} checked{{end}}/>
          {{$card.Type}} {{$card.Number}} · {{$card.Holder}} · {{$card.Expiration}}
        </label>
        <button type="submit" form="eliminar-tarjeta-{{$card.ID}}" class="card-delete">🗑️ Eliminar</button>
      </div>
      {{end}}
      {{if not .Payment.Cards}}<p class="empty-cards">No tienes tarjetas guardadas.</p>{{end}}
    </div>
    <div id="new-card" class="new-card-form">
      <div class="form-group">
        <label for="card-number">Número de tarjeta</label>
        <input id="card-number" name="numero" placeholder="0000 0000 0000 0000"/>
        {{with index .Payment.FieldErrors "numero"}}<div class="field-error">{{.}}</div>{{end}}
      </div>
      <div class="form-group">
        <label for="card-holder">Titular</label>
        <input id="card-holder" name="titular"/>
        {{with index .Payment.FieldErrors "titular"}}<div class="field-error">{{.}}</div>{{end}}
      </div>
      <div class="form-row">
        <div class="form-group">
          <label for="card-expiry">Expiración</label>
          <input id="card-expiry" name="expiracion" placeholder="MM/AAAA"/>
          {{with index .Payment.FieldErrors "expiracion"}}<div class="field-error">{{.}}</div>{{end}}
        </div>
        <div class="form-group">
          <label for="card-cvv">CVV</label>
          <input id="card-cvv" name="cvv" maxlength="4"/>
          {{with index .Payment.FieldErrors "cvv"}}<div class="field-error">{{.}}</div>{{end}}
        </div>
        <div class="form-group">
          <label for="card-type">Tipo</label>
          <select id="card-type" name="tipo">
            <option value="VISA">VISA</option>
            <option value="MASTERCARD">MasterCard</option>
            <option value="AMEX">American Express</option>
          </select>
        </div>
      </div>
    </div>
    <h3>Método de entrega</h3>
    <div class="entrega-options">
      <label class="entrega-option"><input type="radio" name="entrega" value="EMAIL" checked/> 📧 Correo Electrónico</label>
      <label class="entrega-option"><input type="radio" name="entrega" value="AEROPUERTO"/> 🏢 Recoger en Aeropuerto</label>
    </div>
    <button type="submit" class="btn-primary">Pagar {{.Payment.TotalFmt}}</button>
  </form>
  {{range .Payment.Cards}}
  <form id="eliminar-tarjeta-{{.ID}}" method="post" action="/pagos/tarjetas/{{.ID}}/eliminar"
        data-confirm="¿Eliminar esta tarjeta?"
        data-confirm-details="Tarjeta: {{.Number}}. No podrás recuperar esta información después."></form>
  {{end}}
  {{end}}
</div>
{{end}}

{{define "error_panel"}}
<div class="error-panel">
  <p>Algo salió mal al mostrar esta sección. Inténtelo de nuevo.</p>
</div>
{{end}}

{{define "notif_list"}}
{{if not .Notifications}}
<div class="notif-empty">🔔<p>No tienes notificaciones</p></div>
{{else}}
{{range .Notifications}}
<div class="notif-item {{if .Read}}leida{{else}}no-leida{{end}}" data-notif-id="{{.ID}}">
  <div class="notif-icon">{{.Icon}}</div>
  <div class="notif-content">
    <div class="notif-title">{{.Title}}</div>
    <div class="notif-mensaje">{{.Message}}</div>
    <div class="notif-fecha">{{.CreatedAt}}</div>
  </div>
  {{if not .Read}}<div class="notif-dot"></div>{{end}}
  <button class="notif-delete" aria-label="Eliminar notificación">&times;</button>
</div>
{{end}}
{{end}}
{{end}}

{{define "checkin_result"}}
<div class="checkin-result">
  <h3>✅ {{.Message}}</h3>
  <div class="checkin-detail"><span>Billete</span><strong>{{.TicketCode}}</strong></div>
  {{with .Seat}}<div class="checkin-detail"><span>💺 Asiento</span><strong>{{.}}</strong></div>{{end}}
  {{with .Gate}}<div class="checkin-detail"><span>🚪 Puerta de Embarque</span><strong>{{.}}</strong></div>{{end}}
  <div class="checkin-detail"><span>Vuelo</span><strong>{{.Flight.Number}} · {{.Flight.Date}} · {{.Flight.DepartureTime}}</strong></div>
  <p class="checkin-note">Preséntese en la puerta de embarque al menos 45 minutos antes de la salida.</p>
</div>
{{end}}
`
