// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a joined error naming every
// violated rule otherwise.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, errNoTokenSignKey)
	}
	if cfg.App.AccessTokenTTL <= 0 || cfg.App.RefreshTokenTTL <= 0 {
		err = errors.Join(err, errNonPositiveTokenTTL)
	}
	if cfg.App.AccessTokenTTL >= cfg.App.RefreshTokenTTL {
		err = errors.Join(err, errAccessOutlivesRefresh)
	}
	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, errNoDatabaseDSN)
	}
	if d := cfg.Storage.DB.Driver; d != "pgx" && d != "sqlite3" {
		err = errors.Join(err, errUnknownDBDriver)
	}

	return err
}
