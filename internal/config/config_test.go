package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SECRET_ARN", "AWS_REGION", "ATTENDANCE_REACTION", "REPORT_TIME", "TIMEZONE", "DATABASE_PATH", "PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ap-northeast-1", cfg.AWSRegion)
	assert.Equal(t, "出勤_syukkin", cfg.AttendanceReaction)
	assert.Equal(t, "03:00", cfg.ReportTime)
	assert.Equal(t, "3000", cfg.Port)
	assert.False(t, cfg.UseSecretsManager())
	assert.False(t, cfg.ArchiveEnabled())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SECRET_ARN", "arn:aws:secretsmanager:ap-northeast-1:123456789012:secret:slack")
	t.Setenv("REPORT_TIME", "12:30")
	t.Setenv("TIMEZONE", "Asia/Tokyo")
	t.Setenv("DATABASE_PATH", "./attendance.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.UseSecretsManager())
	assert.True(t, cfg.ArchiveEnabled())
	assert.Equal(t, "12:30", cfg.ReportTime)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestConfig_LocationInvalid(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}

	_, err := cfg.Location()
	require.Error(t, err)
}
