package dynamo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	gsi1 = "GSI1"

	callTimeout = 5 * time.Second
)

var ErrClosed = errors.New("dynamo: db is closed")

// DB is the DynamoDB backed registration store. The underlying client is
// created on first use and shared by every caller after that.
type DB struct {
	tableName string

	mu           sync.Mutex
	newClient    func() *dynamodb.Client
	dynamoClient *dynamodb.Client
	httpClient   *http.Client
	closed       bool

	now func() time.Time
}

// NewDB wraps an already built client. Close on such a DB only stops further
// calls; the caller owns the client's connections.
func NewDB(dynamoClient *dynamodb.Client, tableName string) *DB {
	return &DB{
		dynamoClient: dynamoClient,
		tableName:    tableName,
		now:          time.Now,
	}
}

// Open returns a DB whose client is built lazily from cfg over an HTTP client
// the DB owns. A non-empty endpoint overrides the service endpoint, which is
// how dynamodb-local is reached.
func Open(cfg aws.Config, tableName string, endpoint string) *DB {
	d := &DB{
		tableName:  tableName,
		httpClient: &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		now:        time.Now,
	}
	d.newClient = func() *dynamodb.Client {
		return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			o.HTTPClient = d.httpClient
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
		})
	}
	return d
}

func (d *DB) client() (*dynamodb.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrClosed
	}
	if d.dynamoClient == nil {
		d.dynamoClient = d.newClient()
	}
	return d.dynamoClient, nil
}

// Close releases idle connections. Every call after Close fails.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.dynamoClient = nil
	if d.httpClient != nil {
		d.httpClient.CloseIdleConnections()
	}
	return nil
}

// Ping checks that the table is reachable.
func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := d.client()
	if err != nil {
		return err
	}

	_, err = client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.tableName),
	})
	if err != nil {
		return fmt.Errorf("failed to describe table %q: %w", d.tableName, err)
	}
	return nil
}

func newEntityConditional() expression.ConditionBuilder {
	return expression.Name("PK").AttributeNotExists()
}

func exprMustBuild(builder expression.Builder) expression.Expression {
	expr, err := builder.Build()
	if err != nil {
		panic("failed to build dynamo expression")
	}

	return expr
}
