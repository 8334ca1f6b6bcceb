package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"boxlabel/internal/label"
)

type Config struct {
	SaveDirectory   string
	MaxBoxes        int
	Scope           label.Scope
	ZeroOriginGuard bool
	BoxColor        string
	SelectedColor   string
	Confirmations   bool
	LogFile         string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory:   "",
		MaxBoxes:        label.DefaultMaxBoxes,
		Scope:           label.ScopeElement,
		ZeroOriginGuard: true,
		BoxColor:        defaultBoxColor,
		SelectedColor:   defaultSelectedColor,
		Confirmations:   true,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".boxlabelrc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	config, err := parseConfig(bufio.NewScanner(file), homeDir)
	if err != nil {
		log.Printf("config: %v", err)
	}
	return config
}

// parseConfig reads key=value lines. Bad values keep their default and are
// reported together in the returned error.
func parseConfig(scanner *bufio.Scanner, homeDir string) (*Config, error) {
	config := defaultConfig()
	var problems []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "maxboxes", "max_boxes":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				problems = append(problems, fmt.Sprintf("max_boxes %q", value))
				continue
			}
			config.MaxBoxes = n
		case "listenerscope", "listener_scope", "scope":
			scope, err := label.ParseScope(strings.ToLower(value))
			if err != nil {
				problems = append(problems, err.Error())
				continue
			}
			config.Scope = scope
		case "zerooriginguard", "zero_origin_guard":
			config.ZeroOriginGuard = strings.ToLower(value) == "true"
		case "boxcolor", "box_color":
			if _, err := colorful.Hex(value); err != nil {
				problems = append(problems, fmt.Sprintf("box_color %q", value))
				continue
			}
			config.BoxColor = value
		case "selectedcolor", "selected_color":
			if _, err := colorful.Hex(value); err != nil {
				problems = append(problems, fmt.Sprintf("selected_color %q", value))
				continue
			}
			config.SelectedColor = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		}
	}

	if len(problems) > 0 {
		return config, fmt.Errorf("ignored invalid settings: %s", strings.Join(problems, ", "))
	}
	return config, nil
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
