package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"haskenrayuwa_backend/internals/configs"
	"haskenrayuwa_backend/internals/helpers/oss"
)

// StartBackupCron dumps the database on a schedule and ships the dump to
// the OSS bucket. Default is hourly; override with BACKUP_CRON. Disabled
// entirely unless BACKUP_ENABLED is truthy, so local development never
// spawns pg_dump.
func StartBackupCron(svc *oss.OSSService) *cron.Cron {
	if configs.GetEnv("BACKUP_ENABLED", "false") != "true" {
		log.Println("[INFO] backup: disabled (BACKUP_ENABLED != true)")
		return nil
	}
	if svc == nil {
		log.Println("[WARN] backup: OSS not configured, scheduler not started")
		return nil
	}

	spec := configs.GetEnv("BACKUP_CRON", "0 * * * *")
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := runBackup(svc); err != nil {
			log.Printf("[ERROR] backup failed: %v", err)
		}
	}); err != nil {
		log.Printf("[ERROR] backup: bad cron spec %q: %v", spec, err)
		return nil
	}
	c.Start()
	log.Printf("[INFO] backup: scheduled (%s)", spec)
	return c
}

func runBackup(svc *oss.OSSService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	stamp := time.Now().UTC().Format("20060102T150405Z")
	dumpPath := filepath.Join(os.TempDir(), fmt.Sprintf("haskenrayuwa-%s.dump", stamp))
	defer os.Remove(dumpPath)

	log.Println("[INFO] backup: running pg_dump...")
	cmd := exec.CommandContext(ctx, "pg_dump",
		"--format=custom",
		"--file="+dumpPath,
		"--host="+os.Getenv("DB_HOST"),
		"--port="+os.Getenv("DB_PORT"),
		"--username="+os.Getenv("DB_USER"),
		"--dbname="+os.Getenv("DB_NAME"),
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+os.Getenv("DB_PASSWORD"))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pg_dump: %v: %s", err, out)
	}

	key := "backups/" + filepath.Base(dumpPath)
	if err := svc.UploadFile(ctx, key, dumpPath, "application/octet-stream"); err != nil {
		return fmt.Errorf("upload dump: %w", err)
	}

	log.Printf("[INFO] backup: uploaded %s", key)
	return nil
}
