// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	errNoTokenSignKey        = errors.New("token sign key is required")
	errNonPositiveTokenTTL   = errors.New("token lifetimes must be positive")
	errAccessOutlivesRefresh = errors.New("access token lifetime must be shorter than refresh token lifetime")
	errNoDatabaseDSN         = errors.New("database DSN is required")
	errUnknownDBDriver       = errors.New("database driver must be pgx or sqlite3")
)
