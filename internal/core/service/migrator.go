package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/password"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/ports"
)

// CredentialMigrator is a one-shot maintenance job that rewrites legacy
// plaintext credentials as bcrypt hashes. It detects already-migrated
// records purely by the bcrypt format tag, so re-running it against a fully
// migrated store performs zero writes.
//
// The job reads and writes the same field live logins read; run it in a
// maintenance window, never concurrently with traffic or with itself.
type CredentialMigrator struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewCredentialMigrator(users ports.UserRepository, log zerolog.Logger) *CredentialMigrator {
	return &CredentialMigrator{users: users, log: log}
}

// Report summarizes a migration run.
type Report struct {
	Scanned  int
	Migrated int
}

// Run enumerates every user record and hashes any credential still stored in
// legacy plaintext, persisting record by record.
func (m *CredentialMigrator) Run(ctx context.Context) (Report, error) {
	users, err := m.users.FindAll(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list users: %w", err)
	}

	report := Report{Scanned: len(users)}
	for _, user := range users {
		if user.PasswordHash == "" || password.IsHashed(user.PasswordHash) {
			m.log.Debug().Str("email", user.Email).Msg("credential already migrated")
			continue
		}

		hash, err := password.Hash(user.PasswordHash)
		if err != nil {
			return report, fmt.Errorf("hash credential for %s: %w", user.Email, err)
		}
		if err := m.users.UpdateCredential(ctx, user.ID, hash); err != nil {
			return report, fmt.Errorf("update credential for %s: %w", user.Email, err)
		}

		report.Migrated++
		m.log.Info().Str("email", user.Email).Msg("credential migrated")
	}

	m.log.Info().
		Int("scanned", report.Scanned).
		Int("migrated", report.Migrated).
		Msg("credential migration finished")
	return report, nil
}
