package config

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch loads the configuration at configPath and calls onChange with each
// re-read configuration after the file is written or recreated. Reloads
// that fail to decode or validate are logged and skipped.
func Watch(configPath string, logger *zap.Logger, onChange func(*Configuration)) (*Configuration, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	initial, err := Decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		conf, err := Decode(v)
		if err == nil {
			err = conf.Validate()
		}
		if err != nil {
			logger.Error("ignoring invalid configuration change",
				zap.String("op", "config.Watch"),
				zap.String("file", e.Name),
				zap.Error(err),
			)
			return
		}
		logger.Info("configuration changed",
			zap.String("op", "config.Watch"),
			zap.String("file", e.Name),
			zap.String("event", e.Op.String()),
		)
		onChange(conf)
	})
	v.WatchConfig()

	return initial, nil
}
