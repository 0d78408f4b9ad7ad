// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/craft-catalog/internal/config"
	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/internal/utils"
	"github.com/MKhiriev/craft-catalog/models"
)

type httpCatalogClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCatalogClient constructs the REST implementation of [CatalogClient].
// It normalises and validates the base URL from cfg.HTTPAddress and applies
// cfg.RequestTimeout to every request. A token from cfg is used as the
// initial session token.
func NewHTTPCatalogClient(cfg config.Adapter, logger *logger.Logger) (CatalogClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	c := &httpCatalogClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpCatalogClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpCatalogClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// IssueToken implements [CatalogClient]. It POSTs the credentials to
// POST /token and stores the returned token.
func (c *httpCatalogClient) IssueToken(ctx context.Context, credentials models.Credentials) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&tokenResp).
		Post("/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	c.SetToken(tokenResp.Token)
	return tokenResp.Token, nil
}

func (c *httpCatalogClient) Register(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *httpCatalogClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item

	resp, err := c.authedRequest(ctx).SetResult(&items).Get("/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *httpCatalogClient) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item

	resp, err := c.authedRequest(ctx).SetResult(&item).Get(itemPath(id))
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// CreateItem implements [CatalogClient]. Without an image the item is sent
// as JSON; with one, as a multipart form carrying the "image" file part.
func (c *httpCatalogClient) CreateItem(ctx context.Context, item models.NewItem, image *models.ImageUpload) (models.Item, error) {
	var created models.Item

	req := c.authedRequest(ctx).SetResult(&created)
	if image == nil {
		req.SetBody(item)
	} else {
		req.SetMultipartFormData(itemFormFields(item)).
			SetMultipartField("image", image.Filename, image.ContentType, image.Content)
	}

	resp, err := req.Post("/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return created, nil
}

func (c *httpCatalogClient) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) error {
	resp, err := c.authedRequest(ctx).SetBody(update).Put(itemPath(id))
	if err != nil {
		return fmt.Errorf("update item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpCatalogClient) DeleteItem(ctx context.Context, id int64) error {
	resp, err := c.authedRequest(ctx).Delete(itemPath(id))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpCatalogClient) authedRequest(ctx context.Context) *resty.Request {
	return c.client.WithToken(c.Token()).SetContext(ctx)
}

func itemPath(id int64) string {
	return "/items/" + strconv.FormatInt(id, 10)
}

// itemFormFields renders item as the multipart fields of POST /items.
// Absent optional values are left out.
func itemFormFields(item models.NewItem) map[string]string {
	fields := map[string]string{
		"itemID":      strconv.FormatInt(item.ItemID, 10),
		"itemName":    item.Name,
		"description": item.Description,
		"creator":     item.Creator,
	}
	if item.HasPrice() {
		fields["price"] = strconv.FormatFloat(item.Price, 'f', -1, 64)
	}
	if item.Material != nil {
		fields["material"] = *item.Material
	}

	return fields
}
