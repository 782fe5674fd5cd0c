package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const filePermissions = 0644

var log = logger.GetOrCreate("history")

// fileStore is the append-only, plain text history of the recorded samples
type fileStore struct {
	path   string
	header string
}

// NewFileStore creates a history store backed by the file found at path. The header is written only when
// the file is created
func NewFileStore(path string, header string) (*fileStore, error) {
	if len(path) == 0 {
		return nil, errors.New("empty history file path")
	}
	if !IsHeader(header) {
		return nil, fmt.Errorf("invalid history header %q, should start with %q", header, HeaderPrefix)
	}
	header = strings.TrimRight(header, "\r\n")
	if strings.ContainsAny(header, "\r\n") {
		return nil, fmt.Errorf("invalid history header %q, should be a single line", header)
	}

	return &fileStore{
		path:   path,
		header: header,
	}, nil
}

// EnsureFile creates the history file with its header if it does not exist. An existing file is never
// rewritten: a first line that is not a header only produces a warning
func (fs *fileStore) EnsureFile() error {
	err := os.MkdirAll(filepath.Dir(fs.path), os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(fs.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, filePermissions)
	if err != nil {
		return fmt.Errorf("failed to open history file '%s': %w", fs.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	firstLine, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read history file '%s': %w", fs.path, err)
	}

	if len(firstLine) == 0 {
		_, err = f.WriteString(fs.header + "\n")
		if err != nil {
			return fmt.Errorf("failed to write history header: %w", err)
		}

		log.Debug("created history file", "path", fs.path)
		return nil
	}

	if !IsHeader(firstLine) {
		log.Warn("history file does not start with a header line, leaving it unchanged",
			"path", fs.path, "first line", strings.TrimRight(firstLine, "\r\n"))
	}

	return nil
}

// Append writes the sample as a new line at the end of the history file. A value that would not fit on a
// single "timestamp, value" line is refused and nothing is written
func (fs *fileStore) Append(sample common.Sample) error {
	err := CheckValue(sample.Value)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(fs.path, os.O_WRONLY|os.O_APPEND, filePermissions)
	if err != nil {
		return fmt.Errorf("failed to open history file '%s': %w", fs.path, err)
	}

	_, err = f.WriteString(FormatSample(sample) + "\n")
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to history file '%s': %w", fs.path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to close history file '%s': %w", fs.path, err)
	}

	log.Debug("appended sample", "timestamp", sample.Timestamp, "value", sample.Value)

	return nil
}

// LoadTail reads all recorded values, keeps the last numPoints of them and then every interval-th value
func (fs *fileStore) LoadTail(numPoints int, interval int) ([]string, error) {
	if numPoints < 1 {
		return nil, fmt.Errorf("invalid number of points %d", numPoints)
	}
	if interval < 1 {
		return nil, fmt.Errorf("invalid skip interval %d", interval)
	}

	values, err := fs.readValues()
	if err != nil {
		return nil, err
	}

	return SelectTail(values, numPoints, interval), nil
}

func (fs *fileStore) readValues() ([]string, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file '%s': %w", fs.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	values := make([]string, 0)
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber == 1 {
			continue
		}

		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		sample, errParse := ParseSample(line)
		if errParse != nil {
			return nil, fmt.Errorf("%w at line %d of '%s'", errParse, lineNumber, fs.path)
		}

		values = append(values, sample.Value)
	}

	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to read history file '%s': %w", fs.path, err)
	}

	return values, nil
}

// Path returns the history file path
func (fs *fileStore) Path() string {
	return fs.path
}

// IsInterfaceNil returns true if the value under the interface is nil
func (fs *fileStore) IsInterfaceNil() bool {
	return fs == nil
}
