package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "Development defaults pass",
			config:      Config{Env: "development", Port: "8480", DBName: "ripple", DBPassword: "password"},
			expectError: false,
		},
		{
			name:        "Missing port fails",
			config:      Config{Env: "development", DBName: "ripple"},
			expectError: true,
		},
		{
			name:        "Missing database name fails",
			config:      Config{Env: "development", Port: "8480"},
			expectError: true,
		},
		{
			name:        "Production with default password fails",
			config:      Config{Env: "production", Port: "8480", DBName: "ripple", DBPassword: "password"},
			expectError: true,
		},
		{
			name:        "Production with empty password fails",
			config:      Config{Env: "prod", Port: "8480", DBName: "ripple"},
			expectError: true,
		},
		{
			name:        "Production with strong password passes",
			config:      Config{Env: "production", Port: "8480", DBName: "ripple", DBPassword: "s3cure-and-long", DBSSLMode: "require"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
}
