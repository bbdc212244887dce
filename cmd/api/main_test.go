package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ReturnsConfigError(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", "")

	err := run()
	assert.ErrorContains(t, err, "JWT_SECRET is required")
}

func TestRun_ReturnsUnknownDriverError(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "sqlite")

	err := run()
	assert.ErrorContains(t, err, "DB_DRIVER must be postgres or mysql")
}
