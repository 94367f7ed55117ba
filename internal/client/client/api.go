package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/google/uuid"
)

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id.String(), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListUserDevices(ctx context.Context, id uuid.UUID) ([]models.UserDeviceAccess, error) {
	var out []models.UserDeviceAccess
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id.String()+"/devices", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListDevices(ctx context.Context) ([]models.Device, error) {
	var out []models.Device
	if err := c.do(ctx, http.MethodGet, "/api/devices", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListActiveDevices(ctx context.Context) ([]models.Device, error) {
	var out []models.Device
	if err := c.do(ctx, http.MethodGet, "/api/devices/active", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetDevice(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	var d models.Device
	if err := c.do(ctx, http.MethodGet, "/api/devices/"+id.String(), nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) CreateDevice(ctx context.Context, req models.DeviceRegisterRequest) (*models.Device, error) {
	var d models.Device
	if err := c.do(ctx, http.MethodPost, "/api/devices", nil, req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) UpdateDevice(ctx context.Context, id uuid.UUID, req models.DeviceUpdateRequest) (*models.Device, error) {
	var d models.Device
	if err := c.do(ctx, http.MethodPatch, "/api/devices/"+id.String(), nil, req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/devices/"+id.String(), nil, nil, nil)
}

func (c *HTTPClient) ListDeviceAccess(ctx context.Context, id uuid.UUID) ([]models.UserDeviceAccess, error) {
	var out []models.UserDeviceAccess
	if err := c.do(ctx, http.MethodGet, "/api/devices/"+id.String()+"/access", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GrantDeviceAccess(ctx context.Context, id uuid.UUID, req models.DeviceAccessRequest) (*models.UserDeviceAccess, error) {
	var a models.UserDeviceAccess
	if err := c.do(ctx, http.MethodPost, "/api/devices/"+id.String()+"/access", nil, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListEventsByDevice(ctx context.Context, deviceID uuid.UUID) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/device/"+deviceID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecentEvents returns the newest events; the server defaults limit to 10.
func (c *HTTPClient) ListRecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	var out []models.Event
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.do(ctx, http.MethodGet, "/api/events/recent", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var e models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+id.String(), nil, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
