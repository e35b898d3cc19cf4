package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/commonwealth-codeunion/iiko-api/internal/auth"
	"github.com/commonwealth-codeunion/iiko-api/internal/constants"
	"github.com/commonwealth-codeunion/iiko-api/internal/http"
	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
)

// MenusClient implements iiko.MenusClient.
type MenusClient struct {
	httpClient *http.Client
	session    *auth.Session
}

// NewMenusClient creates a new menus client.
func NewMenusClient(httpClient *http.Client, session *auth.Session) *MenusClient {
	return &MenusClient{
		httpClient: httpClient,
		session:    session,
	}
}

// List implements iiko.MenusClient.List.
func (c *MenusClient) List(ctx context.Context, request *iiko.MenusRequest) (*iiko.MenusResponse, error) {
	if !c.session.Authenticated() {
		return nil, iiko.ErrNotAuthenticated
	}

	if request == nil {
		request = &iiko.MenusRequest{}
	}

	resp, err := c.httpClient.Post(ctx, constants.MenuPath, request)
	if err != nil {
		return nil, fmt.Errorf("listing menus: %w", err)
	}

	var list iiko.MenusResponse

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing menus list: %w", err)
	}

	return &list, nil
}

// GetByID implements iiko.MenusClient.GetByID.
func (c *MenusClient) GetByID(ctx context.Context, request *iiko.MenuByIDRequest) (*iiko.Menu, error) {
	if !c.session.Authenticated() {
		return nil, iiko.ErrNotAuthenticated
	}

	resp, err := c.httpClient.Post(ctx, constants.MenuByIDPath, request)
	if err != nil {
		return nil, fmt.Errorf("getting menu: %w", err)
	}

	var menu iiko.Menu

	err = json.Unmarshal(resp.Body, &menu)
	if err != nil {
		return nil, fmt.Errorf("parsing menu: %w", err)
	}

	return &menu, nil
}
