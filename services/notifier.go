// file: services/notifier.go
package services

import (
	"SponsorPortal/models"
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// 提交成功后向 Kafka 发布一条 sponsorship.submitted 事件，供下游
// （邮件通知等）消费。纯 fire-and-forget：发布失败只记日志，
// 绝不影响提交本身的结果。未配置 PORTAL_KAFKA_ADDR 时整个通道关闭。

var eventWriter *kafka.Writer

type submittedEvent struct {
	EventID       string `json:"event_id"`
	Type          string `json:"type"`
	RequestID     uint64 `json:"request_id"`
	Name          string `json:"name"`
	Company       string `json:"company"`
	InterestLevel string `json:"interest_level,omitempty"`
	SubmittedAt   string `json:"submitted_at"`
}

// InitNotifier 按环境变量初始化事件通道
func InitNotifier() {
	addr := os.Getenv("PORTAL_KAFKA_ADDR")
	if addr == "" {
		return
	}
	eventWriter = &kafka.Writer{
		Addr:     kafka.TCP(addr),
		Topic:    "sponsorship.submitted",
		Balancer: &kafka.LeastBytes{},
	}
	log.Println("Sponsorship event notifier enabled.")
}

// CloseNotifier 关闭事件通道（测试和优雅退出用）
func CloseNotifier() {
	if eventWriter != nil {
		_ = eventWriter.Close()
		eventWriter = nil
	}
}

func notifySubmitted(req models.SponsorshipRequest) {
	if eventWriter == nil {
		return
	}

	event := submittedEvent{
		EventID:       uuid.New().String(),
		Type:          "sponsorship.submitted",
		RequestID:     req.ID,
		Name:          req.Name,
		Company:       req.Company,
		InterestLevel: string(req.InterestLevel),
		SubmittedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode submitted event: %v", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := eventWriter.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.EventID),
			Value: payload,
		}); err != nil {
			log.Printf("Failed to publish submitted event: %v", err)
		}
	}()
}
