// file: utils/code_generator.go
package utils

import (
	"fmt"
	"github.com/google/uuid"
	"math/rand"
	"strings"
	"time"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// randomCode 生成指定长度的随机大写字母数字串
func randomCode(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(charset[seededRand.Intn(len(charset))])
	}
	return sb.String()
}

// GenerateTempPassword 生成首次启动用的临时管理员密码
func GenerateTempPassword() string {
	suffix := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	return fmt.Sprintf("%s-%s", randomCode(6), suffix)
}
