package database

import (
	"log"
	"time"

	"github.com/dashteam/dashteam/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewMySQLConnection(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// 把唯一索引冲突翻译成 gorm.ErrDuplicatedKey，service 层靠它兜底防重
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Fatal: 无法连接数据库: %v", err)
	}

	// 自动建表 (Auto Migrate)
	// followups 上的 (user_id, contact_id, section) 唯一索引也在这里生效
	if err := db.AutoMigrate(
		&model.User{},
		&model.Contact{},
		&model.Followup{},
		&model.ChecklistItem{},
		&model.Transaction{},
		&model.Subscription{},
		&model.ConnectedSheet{},
		&model.BattlePlanDay{},
	); err != nil {
		log.Fatalf("Fatal: 数据库迁移失败: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}
