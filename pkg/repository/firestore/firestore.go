package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/interfaces"
	"github.com/nexboard/nexboard/pkg/domain/model/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = interfaces.ErrNotFound

// Client is a Firestore-backed Repository implementation
type Client struct {
	client           *firestore.Client
	projects         *projectRepository
	collectionPrefix string
}

var _ interfaces.Repository = &Client{}

// Option configures the Firestore repository
type Option func(*Client)

// WithCollectionPrefix prefixes all collection names, for sharing a database
// between deployments
func WithCollectionPrefix(prefix string) Option {
	return func(c *Client) {
		c.collectionPrefix = prefix
		c.projects.collectionPrefix = prefix
	}
}

// New creates a Firestore repository for the given GCP project. An empty
// databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Client, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	c := &Client{
		client:   client,
		projects: newProjectRepository(client),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Project() interfaces.ProjectRepository {
	return c.projects
}

// Close releases the underlying Firestore client
func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) tokensCollection() string {
	if c.collectionPrefix != "" {
		return c.collectionPrefix + "tokens"
	}
	return "tokens"
}

func (c *Client) PutToken(ctx context.Context, token *auth.Token) error {
	if err := token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token")
	}

	docRef := c.client.Collection(c.tokensCollection()).Doc(token.ID.String())
	if _, err := docRef.Set(ctx, token); err != nil {
		return goerr.Wrap(err, "failed to put token to firestore")
	}

	return nil
}

func (c *Client) GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error) {
	if err := tokenID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid token ID")
	}

	docRef := c.client.Collection(c.tokensCollection()).Doc(tokenID.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "token not found")
		}
		return nil, goerr.Wrap(err, "failed to get token from firestore")
	}

	var token auth.Token
	if err := doc.DataTo(&token); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal token")
	}

	return &token, nil
}

func (c *Client) DeleteToken(ctx context.Context, tokenID auth.TokenID) error {
	if err := tokenID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token ID")
	}

	docRef := c.client.Collection(c.tokensCollection()).Doc(tokenID.String())
	if _, err := docRef.Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "token not found")
		}
		return goerr.Wrap(err, "failed to delete token from firestore")
	}

	return nil
}
