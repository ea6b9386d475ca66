package app

import (
	"time"

	"github.com/signbridge/signbridge-backend/internal/platform/logger"
	"github.com/signbridge/signbridge-backend/internal/platform/s3"
	"github.com/signbridge/signbridge-backend/internal/services"
	"github.com/signbridge/signbridge-backend/internal/utils"
)

type Config struct {
	Storage       s3.Config
	Upload        services.UploadConfig
	Auth          services.AuthConfig
	PresignExpiry time.Duration
	AllowOrigins  []string
}

func LoadConfig(log *logger.Logger) Config {
	storage := s3.Config{
		Endpoint:  utils.GetEnv("S3_ENDPOINT_URL", "http://localhost:9000", log),
		Region:    utils.GetEnv("S3_REGION", "us-east-1", log),
		Bucket:    utils.GetEnv("S3_BUCKET_NAME", "signbridge-animations", log),
		KeyID:     utils.GetEnv("S3_ACCESS_KEY_ID", "", log),
		AccessKey: utils.GetEnv("S3_SECRET_ACCESS_KEY", "", log),
	}

	maxFileSizeMB := utils.GetEnvAsInt("MAX_FILE_SIZE_MB", 100, log)
	upload := services.UploadConfig{
		MaxFileSizeBytes:  int64(maxFileSizeMB) * 1024 * 1024,
		AllowedExtensions: utils.SplitCSV(utils.GetEnv("ALLOWED_FILE_EXTENSIONS", ".vrma,.glb,.gltf,.fbx,.bvh", log)),
		KeyPrefix:         utils.GetEnv("UPLOAD_KEY_PREFIX", "uploads", log),
	}

	accessTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	auth := services.AuthConfig{
		JWTSecretKey:      utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTTL:         time.Duration(accessTTLSeconds) * time.Second,
		AdminUsername:     utils.GetEnv("ADMIN_USERNAME", "admin", log),
		AdminPassword:     utils.GetEnv("ADMIN_PASSWORD", "", log),
		AdminPasswordHash: utils.GetEnv("ADMIN_PASSWORD_HASH", "", log),
	}

	presignSeconds := utils.GetEnvAsInt("PRESIGNED_URL_EXPIRATION_SECONDS", 3600, log)

	return Config{
		Storage:       storage,
		Upload:        upload,
		Auth:          auth,
		PresignExpiry: time.Duration(presignSeconds) * time.Second,
		AllowOrigins:  utils.SplitCSV(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", log)),
	}
}
