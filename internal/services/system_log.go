package services

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/obaspub/scholarsite/backend/internal/models"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
	"gorm.io/gorm"
)

var globalDB *gorm.DB

// InitSystemLogger sets the database used by the package-level log
// helpers. Before initialization, log calls are dropped.
func InitSystemLogger(db *gorm.DB) {
	globalDB = db
}

func LogInfo(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeLog("info", module, action, message, userID, ip, userAgent, extra)
}

func LogWarning(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeLog("warning", module, action, message, userID, ip, userAgent, extra)
}

func LogError(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeLog("error", module, action, message, userID, ip, userAgent, extra)
}

func writeLog(level, module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	if globalDB == nil {
		return
	}

	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.SystemLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	globalDB.Create(entry)
}

type SystemLogService struct {
	db *gorm.DB
}

func NewSystemLogService(db *gorm.DB) *SystemLogService {
	return &SystemLogService{db: db}
}

type SystemLogListRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	Level     string `form:"level"`
	Module    string `form:"module"`
	Action    string `form:"action"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Search    string `form:"search"`
}

type SystemLogListResponse struct {
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Items    []models.SystemLog `json:"items"`
}

func (s *SystemLogService) List(req *SystemLogListRequest) (*SystemLogListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var logs []models.SystemLog
	var total int64

	query := s.db.Model(&models.SystemLog{})

	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Module != "" {
		query = query.Where("module = ?", req.Module)
	}
	if req.Action != "" {
		query = query.Where("action = ?", req.Action)
	}
	if req.StartDate != "" {
		query = query.Where("created_at >= ?", req.StartDate)
	}
	if req.EndDate != "" {
		query = query.Where("created_at < ?", req.EndDate+" 23:59:59")
	}
	if req.Search != "" {
		query = query.Where("message LIKE ?", "%"+req.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.PageSize).Find(&logs).Error; err != nil {
		return nil, err
	}

	return &SystemLogListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    logs,
	}, nil
}

// GetModules returns the distinct module names present in the log table.
func (s *SystemLogService) GetModules() ([]string, error) {
	var modules []string
	err := s.db.Model(&models.SystemLog{}).Distinct("module").Order("module").Pluck("module", &modules).Error
	return modules, err
}

const retentionKey = "log_retention_days"

// GetRetentionDays returns the configured retention window. Defaults to
// 30 days; 0 or negative disables cleanup.
func (s *SystemLogService) GetRetentionDays() int {
	var record models.StoreRecord
	if err := s.db.Where("record_key = ?", retentionKey).First(&record).Error; err != nil {
		return 30
	}
	days, err := strconv.Atoi(record.Value)
	if err != nil {
		return 30
	}
	return days
}

func (s *SystemLogService) SetRetentionDays(days int) error {
	var record models.StoreRecord
	err := s.db.Where("record_key = ?", retentionKey).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		record = models.StoreRecord{Key: retentionKey, Value: strconv.Itoa(days)}
		return s.db.Create(&record).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&record).Update("value", strconv.Itoa(days)).Error
}

// CleanupOldLogs deletes entries older than retentionDays and returns
// the number deleted.
func (s *SystemLogService) CleanupOldLogs(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

var logCleanupStop chan struct{}

// StartLogCleanupScheduler prunes old log entries once at startup and
// then every 24 hours.
func StartLogCleanupScheduler(db *gorm.DB) {
	logCleanupStop = make(chan struct{})

	go func() {
		service := NewSystemLogService(db)
		runCleanup(service)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				runCleanup(service)
			case <-logCleanupStop:
				return
			}
		}
	}()
}

// StopLogCleanupScheduler stops the cleanup loop.
func StopLogCleanupScheduler() {
	if logCleanupStop != nil {
		close(logCleanupStop)
		logCleanupStop = nil
	}
}

func runCleanup(service *SystemLogService) {
	retentionDays := service.GetRetentionDays()
	if retentionDays <= 0 {
		logger.Debug().Msg("log cleanup disabled (retention_days <= 0)")
		return
	}

	deleted, err := service.CleanupOldLogs(retentionDays)
	if err != nil {
		logger.Error().Err(err).Msg("failed to cleanup old logs")
		return
	}

	if deleted > 0 {
		logger.Infof("cleaned up %d logs older than %d days", deleted, retentionDays)
	}
}
