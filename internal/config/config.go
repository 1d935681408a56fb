package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	TabStop        int  `toml:"tab-stop"`
	QuitTimes      int  `toml:"quit-times"`
	WelcomeMessage bool `toml:"welcome-message"`
	MessageTimeout int  `toml:"message-timeout"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabStop:        8,
			QuitTimes:      2,
			WelcomeMessage: true,
			MessageTimeout: 5,
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, err
	}

	if userCfg.Editor.TabStop > 0 {
		cfg.Editor.TabStop = userCfg.Editor.TabStop
	}
	if userCfg.Editor.QuitTimes > 0 {
		cfg.Editor.QuitTimes = userCfg.Editor.QuitTimes
	}
	if md.IsDefined("editor", "welcome-message") {
		cfg.Editor.WelcomeMessage = userCfg.Editor.WelcomeMessage
	}
	if userCfg.Editor.MessageTimeout > 0 {
		cfg.Editor.MessageTimeout = userCfg.Editor.MessageTimeout
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("TILDE_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "tilde"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tilde"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
