package assets

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
)

// Sync never re-checks objects that already exist (presence at the
// hash path is trusted), so a corrupted file stays corrupted until
// something looks. Scan is that something: it re-hashes the whole
// store and reports objects whose content no longer matches their
// name.

type scanJob struct {
	path string
	want string
}

type scanResult struct {
	path string
	bad  bool
	err  error
}

type ScanReport struct {
	Checked int
	// Corrupt holds store paths whose content hash no longer
	// matches the file name.
	Corrupt []string
}

func Scan(root string, workers int) (ScanReport, error) {
	var report ScanReport

	objectsDir := filepath.Join(root, "assets", "objects")
	var jobs []scanJob
	err := filepath.WalkDir(
		objectsDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			name := filepath.Base(p)
			if ValidateHash(name) != nil {
				return nil
			}
			jobs = append(jobs, scanJob{
				path: p, want: name,
			})
			return nil
		},
	)
	if os.IsNotExist(err) {
		return report, nil
	}
	if err != nil {
		return report, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 0 {
		return report, nil
	}

	jobCh := make(chan scanJob, len(jobs))
	resultCh := make(chan scanResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scanWorker(jobCh, resultCh)
		}()
	}

	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	wg.Wait()
	close(resultCh)

	for r := range resultCh {
		if r.err != nil {
			return report, r.err
		}
		report.Checked++
		if r.bad {
			report.Corrupt = append(
				report.Corrupt, r.path,
			)
		}
	}
	sort.Strings(report.Corrupt)
	return report, nil
}

func scanWorker(
	jobs <-chan scanJob,
	results chan<- scanResult,
) {
	buf := make([]byte, 1<<20)
	for j := range jobs {
		bad, err := checkObject(j.path, j.want, buf)
		results <- scanResult{
			path: j.path, bad: bad, err: err,
		}
	}
}

func checkObject(
	path, want string, buf []byte,
) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return false, err
	}
	return hex.EncodeToString(h.Sum(nil)) != want, nil
}
