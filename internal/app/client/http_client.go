package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"escuela/internal/app/client/config"
	"escuela/internal/domain/debt"
	"escuela/internal/domain/materia"

	"golang.org/x/exp/slog"
)

// errNotFound is returned by parseResponse on a 404 and turned into a
// boolean by the callers.
var errNotFound = errors.New("not found")

// httpClient talks to a running escuela server. It satisfies
// materia.Servicer and debt.Lookup so commands do not care where the data
// lives.
type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     cfg.Timeout,
			MaxIdleConnsPerHost: 2,
		},
	}

	baseURL := strings.TrimRight(cfg.ServerAddress, "/")
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   baseURL,
		userAgent: "escuela-cli/1.0",
	}
}

// HealthCheck reports whether the server answers its health endpoint.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) List(ctx context.Context) ([]materia.Materia, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/materias", nil)
	if err != nil {
		return nil, err
	}

	items := make([]materia.Materia, 0)
	if err := h.parseResponse(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpClient) Get(ctx context.Context, id string) (materia.Materia, bool, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/materias/"+url.PathEscape(id), nil)
	if err != nil {
		return materia.Materia{}, false, err
	}
	return h.parseMateria(resp)
}

func (h *httpClient) Create(ctx context.Context, in materia.NewInput) (materia.Materia, error) {
	body := map[string]any{"nombre": in.Nombre, "descripcion": in.Descripcion}
	if in.ID != "" {
		body["id"] = in.ID
	}
	if in.PlanEstudio != nil {
		body["planEstudio"] = in.PlanEstudio
	}
	if in.PuntosEvaluacion != nil {
		body["puntosEvaluacion"] = in.PuntosEvaluacion
	}

	resp, err := h.doRequest(ctx, http.MethodPost, "/materias", body)
	if err != nil {
		return materia.Materia{}, err
	}

	var m materia.Materia
	if err := h.parseResponse(resp, &m); err != nil {
		return materia.Materia{}, err
	}
	return m, nil
}

func (h *httpClient) Update(ctx context.Context, id string, p materia.Patch) (materia.Materia, bool, error) {
	body := map[string]any{}
	if p.Nombre != nil {
		body["nombre"] = *p.Nombre
	}
	if p.Descripcion != nil {
		body["descripcion"] = *p.Descripcion
	}
	if p.PlanEstudio != nil {
		body["planEstudio"] = p.PlanEstudio
	}
	if p.PuntosEvaluacion != nil {
		body["puntosEvaluacion"] = p.PuntosEvaluacion
	}

	resp, err := h.doRequest(ctx, http.MethodPut, "/materias/"+url.PathEscape(id), body)
	if err != nil {
		return materia.Materia{}, false, err
	}
	return h.parseMateria(resp)
}

func (h *httpClient) Remove(ctx context.Context, id string) (bool, error) {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/materias/"+url.PathEscape(id), nil)
	if err != nil {
		return false, err
	}

	if err := h.parseResponse(resp, nil); err != nil {
		if errors.Is(err, errNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (h *httpClient) ForStudent(ctx context.Context, studentID string) ([]debt.Debt, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/debts/student/"+url.PathEscape(studentID), nil)
	if err != nil {
		return nil, err
	}

	debts := make([]debt.Debt, 0)
	if err := h.parseResponse(resp, &debts); err != nil {
		return nil, err
	}
	return debts, nil
}

func (h *httpClient) parseMateria(resp *http.Response) (materia.Materia, bool, error) {
	var m materia.Materia
	if err := h.parseResponse(resp, &m); err != nil {
		if errors.Is(err, errNotFound) {
			return materia.Materia{}, false, nil
		}
		return materia.Materia{}, false, err
	}
	return m, true, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unreachable: %w", err)
	}

	return resp, nil
}

// errorModel is the RFC 9457 problem document the server answers with.
type errorModel struct {
	Detail string `json:"detail"`
	Errors []struct {
		Message  string `json:"message"`
		Location string `json:"location"`
	} `json:"errors"`
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode, "bytes", len(body))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var em errorModel
		_ = json.Unmarshal(body, &em)
		verr := &materia.ValidationError{Message: em.Detail}
		if len(em.Errors) > 0 {
			verr.Field = strings.TrimPrefix(em.Errors[0].Location, "body.")
			if em.Errors[0].Message != "" {
				verr.Message = em.Errors[0].Message
			}
		}
		return verr
	case resp.StatusCode >= 400:
		var em errorModel
		if err := json.Unmarshal(body, &em); err == nil && em.Detail != "" {
			return fmt.Errorf("server error: %s", em.Detail)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
