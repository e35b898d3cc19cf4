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

// OrganizationsClient implements iiko.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
	session    *auth.Session
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client, session *auth.Session) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
		session:    session,
	}
}

// List implements iiko.OrganizationsClient.List. A nil request lists all
// enabled organizations with ids and names only.
func (c *OrganizationsClient) List(ctx context.Context, request *iiko.OrganizationsRequest) (*iiko.OrganizationsResponse, error) {
	if !c.session.Authenticated() {
		return nil, iiko.ErrNotAuthenticated
	}

	if request == nil {
		request = &iiko.OrganizationsRequest{}
	}

	resp, err := c.httpClient.Post(ctx, constants.OrganizationsPath, request)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	var list iiko.OrganizationsResponse

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing organizations list: %w", err)
	}

	return &list, nil
}
