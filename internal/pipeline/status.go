package pipeline

import (
	"fmt"
	"log"
	"os"
	"time"
)

// WriteStatus overwrites the status file with a message and timestamp.
// External observers poll this file; it always reflects the latest run.
func WriteStatus(path, message string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	content := fmt.Sprintf("%s at %s", message, ts)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Printf("[WARN] write status file: %v", err)
		return
	}
	log.Printf("[INFO] %s", message)
}
