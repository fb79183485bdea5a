package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "撿到失物", cfg.CmdReport)
	require.Equal(t, "查看失物招領", cfg.CmdView)
	require.Equal(t, "取消上報", cfg.CmdCancel)
	require.Equal(t, []string{"上報失物", "我撿到失物"}, cfg.CmdReportAliases)
	require.Equal(t, 24, cfg.JWTExpireHours)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CMD_REPORT", "report lost item")
	t.Setenv("CMD_REPORT_ALIASES", " found something , i found an item ,")
	t.Setenv("JWT_EXPIRE_HOURS", "6")

	cfg := Load()

	require.Equal(t, "report lost item", cfg.CmdReport)
	require.Equal(t, []string{"found something", "i found an item"}, cfg.CmdReportAliases)
	require.Equal(t, 6, cfg.JWTExpireHours)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRE_HOURS", "soon")

	cfg := Load()
	require.Equal(t, 24, cfg.JWTExpireHours)
}
