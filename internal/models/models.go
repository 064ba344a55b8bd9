package models

import "time"

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Name         *string    `db:"name"`
	Age          *int       `db:"age"`
	HeightCm     *float64   `db:"height_cm"`
	CurrWeightKg *float64   `db:"curr_weight_kg"`
	GoalWeightKg *float64   `db:"goal_weight_kg"`
	FitnessLevel *string    `db:"fitness_level"`
	Role         string     `db:"role"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}

type BodyMetric struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	WeightKg   float64   `db:"weight_kg"`
	BodyFatPct *float64  `db:"body_fat_pct"`
	Date       time.Time `db:"date"`
	CreatedAt  time.Time `db:"created_at"`
}

type Workout struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Date      time.Time `db:"date"`
	Notes     *string   `db:"notes"`
	Exercises []byte    `db:"exercises"`
	CreatedAt time.Time `db:"created_at"`
}

type ServerMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"captured_at"`
	ProcessRSSBytes   int64     `db:"process_rss_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
}
