package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port pair implementing flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial StructuredConfig. Unset flags stay
// zero so they do not override other sources.
//
// Flags:
//
//	-a                 HTTP listen address host:port
//	-grpc-address      gRPC health listen address host:port
//	-d                 database DSN
//	-db-driver         postgres | sqlite3
//	-c, -config        JSON config file path
//	-token-sign-key    token signing key
//	-token-issuer      token issuer
//	-token-duration    token lifetime (e.g. 1h)
//	-request-timeout   server request timeout (e.g. 30s)
//	-auth-rate-limit   auth requests per second per IP
//	-auth-rate-burst   auth burst size
//	-server-url        client: server base URL
//	-adapter-timeout   client: outbound request timeout
//	-kdf               client: sha256 | argon2id
//	-log-file          client: log file path
//	-auto-lock         client: idle time before the vault locks
//	-clipboard-timeout client: time before a copied secret is cleared
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (postgres, sqlite3)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Server.AuthRateLimit, "auth-rate-limit", 0, "Auth requests per second per client")
	fs.IntVar(&cfg.Server.AuthRateBurst, "auth-rate-burst", 0, "Auth request burst per client")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server-url", "", "Server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.StringVar(&cfg.App.KDF, "kdf", "", "Key derivation (sha256, argon2id)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")
	fs.DurationVar(&cfg.Workers.AutoLockTimeout, "auto-lock", 0, "Idle time before the vault locks")
	fs.DurationVar(&cfg.Workers.ClipboardTimeout, "clipboard-timeout", 0, "Time before a copied secret is cleared")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", an IP address, or
// empty (all interfaces).
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

