// Package restapi cliente HTTP del servicio de negocio de Beiplas. Toda la
// frontera del núcleo son llamadas REST: las respuestas llegan en un sobre
// {status, message, data} y data.id encadena las creaciones dependientes.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config configuración del cliente.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client cliente base. Usa net/http de la stdlib con timeout propio.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// NewClient construye el cliente. Timeout por defecto de 30 s: el servicio de
// negocio puede tardar en los listados grandes.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// envelope sobre estándar de las respuestas del servicio de negocio.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// UpstreamError error devuelto por el servicio de negocio; conserva el mensaje
// del servidor para mostrarlo al usuario.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("servicio de negocio (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("servicio de negocio respondió %d", e.StatusCode)
}

// isNotFound true si el error es un 404 del servicio de negocio. Las consultas
// por id lo traducen a registro inexistente en lugar de propagarlo como falla
// del servicio.
func isNotFound(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound
}

// idPayload cuerpo mínimo para encadenar el id de un recurso recién creado.
type idPayload struct {
	ID int `json:"id"`
}

// do ejecuta una llamada JSON. out puede ser nil cuando no interesa el cuerpo.
// Un 204 (borrado duro) no trae sobre.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("armar petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta %s %s: %w", method, path, err)
	}

	var env envelope
	if len(raw) > 0 {
		// El sobre puede faltar en errores de proxy; se tolera.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 || (env.Status != "" && env.Status != "success") {
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("message", env.Message).
			Msg("el servicio de negocio rechazó la petición")
		return &UpstreamError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		data := env.Data
		if data == nil {
			data = raw
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decodificar respuesta %s %s: %w", method, path, err)
		}
	}
	return nil
}

// isoDate fecha en formato de intercambio YYYY-MM-DD. Acepta también
// timestamps ISO completos truncando en la 'T'.
type isoDate time.Time

func (d isoDate) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format("2006-01-02") + `"`), nil
}

func (d *isoDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = isoDate(time.Time{})
		return nil
	}
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	*d = isoDate(t)
	return nil
}
