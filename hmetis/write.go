package hmetis

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"time"
)

// WritePartition writes one decimal block id per line, in vertex order
// (§6 "Output (partition file)").
func WritePartition(path string, assign []uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hmetis.WritePartition: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, b := range assign {
		if _, err := w.WriteString(strconv.Itoa(int(b))); err != nil {
			return fmt.Errorf("hmetis.WritePartition: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("hmetis.WritePartition: %w", err)
		}
	}
	return w.Flush()
}

// WriteTiming writes the measured partition duration, in seconds, as a
// single decimal to path (§6's timing sidecar).
func WriteTiming(path string, elapsed time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hmetis.WriteTiming: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%.6f\n", elapsed.Seconds())
	if err != nil {
		return fmt.Errorf("hmetis.WriteTiming: %w", err)
	}
	return nil
}
