// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx, sqlite3, libsql)
//	-db-auth-token Turso auth token
//	-migrate apply migrations at startup
//	-session-backend session backend (memory, redis)
//	-redis-url redis URL for the redis session backend
//	-session-secret session cookie signing secret
//	-session-ttl session lifetime (e.g., "24h")
//	-public-url public base URL used in emails
//	-resend-api-key Resend API key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver, databaseAuthToken string
	var migrate bool
	var sessionBackend, redisURL, sessionSecret string
	var sessionTTL, requestTimeout time.Duration
	var publicURL, resendAPIKey string
	var jsonConfigPath string

	fs := flag.NewFlagSet("ncm-lead", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3, libsql)")
	fs.StringVar(&databaseAuthToken, "db-auth-token", "", "Turso auth token")
	fs.BoolVar(&migrate, "migrate", false, "Apply migrations at startup")
	fs.StringVar(&sessionBackend, "session-backend", "", "Session backend (memory, redis)")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing secret")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.StringVar(&publicURL, "public-url", "", "Public base URL")
	fs.StringVar(&resendAPIKey, "resend-api-key", "", "Resend API key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SessionSecret: sessionSecret,
			SessionTTL:    sessionTTL,
			PublicURL:     publicURL,
		},
		Storage: Storage{
			DB: DB{
				Driver:    databaseDriver,
				DSN:       databaseDSN,
				AuthToken: databaseAuthToken,
				Migrate:   migrate,
			},
			Session: Session{
				Backend:  sessionBackend,
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Notifier: Notifier{
			ResendAPIKey: resendAPIKey,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host (":5001") listens on all interfaces. It validates the port
// range, checks IP correctness unless host is "localhost", and returns an
// error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
