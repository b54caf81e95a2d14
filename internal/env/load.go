package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads path (e.g. ".env") and sets an environment variable for each KEY=VALUE line.
// Variables already present in the environment are left alone. Empty lines and lines
// starting with # are skipped. A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("env: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("env: %w", err)
	}
	return nil
}

func parseLine(raw string) (key, value string, ok bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// Float32 returns the value of key parsed as a float. ok is false when key is unset or empty.
func Float32(key string) (v float32, ok bool, err error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false, fmt.Errorf("env: %s: %w", key, err)
	}
	return float32(f), true, nil
}

// Int returns the value of key parsed as an integer. ok is false when key is unset or empty.
func Int(key string) (v int, ok bool, err error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("env: %s: %w", key, err)
	}
	return n, true, nil
}
