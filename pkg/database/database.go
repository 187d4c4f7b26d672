// Package database opens the connections the SQL and Mongo extractors and
// loaders work through. SQL sources are addressed by URL; the driver is
// picked from the scheme, so one connection string parameter covers
// postgres, mysql, sqlserver and sqlite alike.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const pingTimeout = 5 * time.Second

// Open connects to a SQL database addressed by URL and verifies the
// connection with a ping before returning it.
func Open(ctx context.Context, connURL string) (*sql.DB, error) {
	driver, dsn, err := driverAndDSN(connURL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening SQL database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to SQL database (ping failed): %w", err)
	}
	return db, nil
}

// Placeholder returns the query placeholder for the n-th parameter
// (1-based) in the dialect the connection URL addresses.
func Placeholder(connURL string, n int) string {
	switch schemeOf(connURL) {
	case "postgres", "postgresql":
		return fmt.Sprintf("$%d", n)
	case "sqlserver", "mssql":
		return fmt.Sprintf("@p%d", n)
	default:
		return "?"
	}
}

func schemeOf(connURL string) string {
	scheme, _, found := strings.Cut(connURL, "://")
	if !found {
		return ""
	}
	return strings.ToLower(scheme)
}

func driverAndDSN(connURL string) (string, string, error) {
	switch scheme := schemeOf(connURL); scheme {
	case "postgres", "postgresql":
		return "pgx", connURL, nil
	case "sqlserver", "mssql":
		return "sqlserver", connURL, nil
	case "mysql":
		dsn, err := mysqlDSN(connURL)
		return "mysql", dsn, err
	case "sqlite":
		return "sqlite", strings.TrimPrefix(connURL, "sqlite://"), nil
	default:
		return "", "", fmt.Errorf("unsupported database URL scheme %q", scheme)
	}
}

// mysqlDSN rewrites a mysql:// URL into the user:pass@tcp(host)/db form
// the go-sql-driver expects.
func mysqlDSN(connURL string) (string, error) {
	u, err := url.Parse(connURL)
	if err != nil {
		return "", fmt.Errorf("invalid mysql URL: %w", err)
	}

	var creds string
	if u.User != nil {
		creds = u.User.Username()
		if password, ok := u.User.Password(); ok {
			creds += ":" + password
		}
		creds += "@"
	}

	dsn := fmt.Sprintf("%stcp(%s)/%s", creds, u.Host, strings.TrimPrefix(u.Path, "/"))
	if u.RawQuery != "" {
		dsn += "?" + u.RawQuery
	}
	return dsn, nil
}

// ConnectMongo connects a MongoDB client and verifies it with a ping.
func ConnectMongo(ctx context.Context, connURL string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(connURL))
	if err != nil {
		return nil, fmt.Errorf("error creating MongoDB client: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), pingTimeout)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)

		return nil, fmt.Errorf("error connecting to MongoDB (ping failed): %w", err)
	}
	return client, nil
}
