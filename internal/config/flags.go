// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args and returns the
// resulting config together with the positional arguments left after the
// flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-log-level minimal log level
//	-password-hash-cost bcrypt cost
//	-token-mode token mode (opaque or jwt)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-page-size contacts per search page
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-server API base URL used by the client
//	-client-timeout client request timeout
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var logLevel string
	var passwordHashCost int
	var tokenMode, tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var pageSize int
	var requestTimeout time.Duration
	var adapterAddress string
	var clientTimeout time.Duration

	fs := flag.NewFlagSet("go-contact-keeper", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.StringVar(&tokenMode, "token-mode", "", "Token mode (opaque or jwt)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&pageSize, "page-size", 0, "Contacts per search page")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "API base URL used by the client")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:         logLevel,
			PasswordHashCost: passwordHashCost,
			TokenMode:        tokenMode,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			SearchPageSize:   pageSize,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: clientTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
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
// An empty host means all interfaces. Otherwise the host must be "localhost"
// or a valid IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
