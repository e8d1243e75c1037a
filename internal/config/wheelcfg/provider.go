package wheelcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"wheel_backend/internal/model"
)

type fileSector struct {
	Amount          int     `yaml:"amount"`
	BaseProbability float64 `yaml:"base_probability"`
	MaxProbability  float64 `yaml:"max_probability"`
}

type fileConfig struct {
	Wheel struct {
		DailyCap         int          `yaml:"daily_cap"`
		FreeSpinInterval string       `yaml:"free_spin_interval"`
		Sectors          []fileSector `yaml:"sectors"`
	} `yaml:"wheel"`
}

// Provider - конфигурация колеса из YAML файла.
// Файл отслеживается через fsnotify: правка админом подхватывается на лету,
// сервисы читают актуальную версию через Current на каждом вызове
type Provider struct {
	path string

	mtx sync.RWMutex
	cfg model.WheelConfig

	watcher *fsnotify.Watcher
}

// NewProvider - загружает конфигурацию и запускает наблюдение за файлом.
// Невалидный файл на старте - фатальная ошибка
func NewProvider(path string) (*Provider, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	// Следим за директорией: редакторы и атомарная запись пересоздают файл,
	// и watch на сам файл после этого отваливается
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config dir: %w", err)
	}

	p := &Provider{
		path:    path,
		cfg:     cfg,
		watcher: watcher,
	}
	go p.watchLoop()

	return p, nil
}

// Current - актуальная конфигурация колеса
func (p *Provider) Current() model.WheelConfig {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return p.cfg
}

// Rewrite - перезаписывает файл конфигурации и сразу применяет новую версию.
// Используется админским эндпоинтом
func (p *Provider) Rewrite(cfg model.WheelConfig) error {
	if err := validate(cfg); err != nil {
		return err
	}

	var fc fileConfig
	fc.Wheel.DailyCap = cfg.DailyCap
	fc.Wheel.FreeSpinInterval = cfg.FreeSpinInterval.String()
	for _, s := range cfg.Sectors {
		fc.Wheel.Sectors = append(fc.Wheel.Sectors, fileSector{
			Amount:          s.Amount,
			BaseProbability: s.BaseProbability,
			MaxProbability:  s.MaxProbability,
		})
	}

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}

	// Пишем во временный файл и переименовываем, чтобы не оставить
	// полузаписанный конфиг при сбое
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return err
	}

	p.mtx.Lock()
	p.cfg = cfg
	p.mtx.Unlock()

	return nil
}

// Close - останавливает наблюдение за файлом
func (p *Provider) Close() error {
	return p.watcher.Close()
}

func (p *Provider) watchLoop() {
	for {
		select {
		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(p.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := loadFile(p.path)
			if err != nil {
				// Оставляем прежнюю конфигурацию, пока файл не починят
				zap.L().Error("failed to reload wheel config", zap.Error(err))
				continue
			}

			p.mtx.Lock()
			p.cfg = cfg
			p.mtx.Unlock()

			zap.L().Info("wheel config reloaded",
				zap.Int("daily_cap", cfg.DailyCap),
				zap.Int("sectors", len(cfg.Sectors)))
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			zap.L().Error("wheel config watcher error", zap.Error(err))
		}
	}
}

func loadFile(path string) (model.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.WheelConfig{}, fmt.Errorf("failed to read wheel config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return model.WheelConfig{}, fmt.Errorf("failed to parse wheel config: %w", err)
	}

	interval, err := time.ParseDuration(fc.Wheel.FreeSpinInterval)
	if err != nil {
		return model.WheelConfig{}, fmt.Errorf("invalid free spin interval: %w", err)
	}

	cfg := model.WheelConfig{
		DailyCap:         fc.Wheel.DailyCap,
		FreeSpinInterval: interval,
	}
	for _, s := range fc.Wheel.Sectors {
		cfg.Sectors = append(cfg.Sectors, model.PrizeTier{
			Amount:          s.Amount,
			BaseProbability: s.BaseProbability,
			MaxProbability:  s.MaxProbability,
		})
	}

	if err := validate(cfg); err != nil {
		return model.WheelConfig{}, err
	}

	return cfg, nil
}

func validate(cfg model.WheelConfig) error {
	if cfg.DailyCap <= 0 {
		return fmt.Errorf("daily cap must be positive, got %d", cfg.DailyCap)
	}
	if cfg.FreeSpinInterval <= 0 {
		return fmt.Errorf("free spin interval must be positive, got %s", cfg.FreeSpinInterval)
	}
	if len(cfg.Sectors) < 2 {
		return fmt.Errorf("wheel needs at least 2 sectors, got %d", len(cfg.Sectors))
	}

	seen := make(map[int]struct{}, len(cfg.Sectors))
	for _, s := range cfg.Sectors {
		if s.Amount < 0 {
			return fmt.Errorf("sector amount must be non-negative, got %d", s.Amount)
		}
		if _, ok := seen[s.Amount]; ok {
			return fmt.Errorf("duplicate sector amount %d", s.Amount)
		}
		seen[s.Amount] = struct{}{}

		if s.BaseProbability < 0 || s.BaseProbability > 100 {
			return fmt.Errorf("sector %d: base probability out of range: %v", s.Amount, s.BaseProbability)
		}
		if s.MaxProbability < 0 || s.MaxProbability > 100 {
			return fmt.Errorf("sector %d: max probability out of range: %v", s.Amount, s.MaxProbability)
		}
	}

	if _, ok := seen[0]; !ok {
		return fmt.Errorf("wheel must have a zero (no-win) sector")
	}

	return nil
}
