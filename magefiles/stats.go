package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Stats prints Go lines of code per tree as a single JSON record.
func Stats() error {
	trees := map[string]int{
		"cmd":      0,
		"internal": 0,
		"pkg":      0,
		"tests":    0,
	}
	var prodLines, testLines int

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path == "vendor" || path == ".git" || path == binaryDir || path == "magefiles" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		count, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		root := strings.SplitN(filepath.ToSlash(path), "/", 2)[0]
		if _, ok := trees[root]; ok {
			trees[root] += count
		}
		if strings.HasSuffix(path, "_test.go") {
			testLines += count
		} else {
			prodLines += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	record := map[string]int{
		"go_loc_prod":     prodLines,
		"go_loc_test":     testLines,
		"go_loc":          prodLines + testLines,
		"go_loc_cmd":      trees["cmd"],
		"go_loc_internal": trees["internal"],
		"go_loc_pkg":      trees["pkg"],
		"go_loc_tests":    trees["tests"],
	}
	line, err := json.Marshal(record)
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
