package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Taian-an/gym-management/config"
	"github.com/Taian-an/gym-management/models"
)

// Connect เปิด connection ไป PostgreSQL พร้อม retry (รอ DB ตอน compose ขึ้นพร้อมกัน)
// คืน handle ให้ caller ส่งต่อเอง — ไม่เก็บเป็น global
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 1; i <= 10; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			// แปล error ของ driver ให้เป็น gorm.ErrDuplicatedKey ฯลฯ
			TranslateError: true,
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					log.Printf("database connected (attempt %d)", i)
					return db, migrate(db)
				}
			}
		}

		wait := time.Duration(i) * time.Second
		if wait > 5*time.Second {
			wait = 5 * time.Second
		}
		log.Printf("database connect attempt %d failed: %v", i, err)
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("failed to connect database: %w", err)
}

func migrate(db *gorm.DB) error {
	// ----- AutoMigrate โครงสร้างทั้งหมดของเรา -----
	if err := db.AutoMigrate(
		&models.Coach{},
		&models.Member{},
		&models.Course{},
		&models.Enrollment{}, // unique (member_id, course_id) สร้างจาก tag ของ model
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
