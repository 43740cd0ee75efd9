package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed corpus.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// CorpusList returns the embedded default word list, one word per line,
// lowercased, comments and blank lines stripped.
func CorpusList() ([]string, error) {
	return readLines("corpus.txt")
}
