package domain

import (
	"path/filepath"
	"strings"
)

const (
	VaultDirName   = "video-transcriber-vault"
	VaultFormat    = "toml"
	VaultStoreName = "vault." + VaultFormat
	VaultLockName  = ".vault.lock"
)

// VaultLayout is the on-disk shape of one vault.
type VaultLayout struct {
	Root string
}

// ResolveLayout places the vault under basePath, or under tempDir when no
// base path is supplied. A leading "~/" expands to homeDir.
func ResolveLayout(basePath, homeDir, tempDir string) VaultLayout {
	base := strings.TrimSpace(basePath)
	if base == "" {
		base = tempDir
	}

	return VaultLayout{Root: filepath.Join(ExpandHome(base, homeDir), VaultDirName)}
}

func ExpandHome(path, homeDir string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(homeDir, rest)
	}
	return path
}

func (l VaultLayout) StorePath() string {
	return filepath.Join(l.Root, VaultStoreName)
}

func (l VaultLayout) LockPath() string {
	return filepath.Join(l.Root, VaultLockName)
}

func (l VaultLayout) ItemDir(id ItemID) string {
	return filepath.Join(l.Root, string(id))
}
