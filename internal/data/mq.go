package data

import (
	"context"
	"time"

	"etaus/internal/biz"
	"etaus/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// routingKeyTemplateCompleted 模板测试完成事件
const routingKeyTemplateCompleted = "template.completed"

// mqPublisher MQ 发布器实现
type mqPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *log.Helper
}

// NewMQPublisher 创建 MQ 发布器，RabbitMQ 不可用时退化为空实现
func NewMQPublisher(c *conf.Data, logger log.Logger) (biz.ReportPublisher, func(), error) {
	helper := log.NewHelper(log.With(logger, "module", "data/mq"))

	rc := c.GetRabbitmq()
	if rc.GetUrl() == "" {
		helper.Warn("rabbitmq config not found, mq publisher disabled")
		return &noopMQPublisher{log: helper}, func() {}, nil
	}

	conn, err := amqp.Dial(rc.Url)
	if err != nil {
		helper.Warnf("failed to connect rabbitmq: %v, using noop publisher", err)
		return &noopMQPublisher{log: helper}, func() {}, nil
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		helper.Warnf("failed to open channel: %v, using noop publisher", err)
		return &noopMQPublisher{log: helper}, func() {}, nil
	}

	err = ch.ExchangeDeclare(
		rc.Exchange,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		helper.Warnf("failed to declare exchange: %v, using noop publisher", err)
		return &noopMQPublisher{log: helper}, func() {}, nil
	}

	if rc.Queue != "" {
		if _, err = ch.QueueDeclare(rc.Queue, true, false, false, false, nil); err == nil {
			err = ch.QueueBind(rc.Queue, routingKeyTemplateCompleted, rc.Exchange, false, nil)
		}
		if err != nil {
			ch.Close()
			conn.Close()
			helper.Warnf("failed to declare or bind queue: %v, using noop publisher", err)
			return &noopMQPublisher{log: helper}, func() {}, nil
		}
	}

	helper.Infof("rabbitmq connected: exchange=%s queue=%s binding=%s",
		rc.Exchange, rc.Queue, routingKeyTemplateCompleted)

	cleanup := func() {
		if err := ch.Close(); err != nil {
			helper.Errorf("failed to close channel: %v", err)
		}
		if err := conn.Close(); err != nil {
			helper.Errorf("failed to close connection: %v", err)
		}
		helper.Info("rabbitmq connection closed")
	}

	return &mqPublisher{
		conn:     conn,
		channel:  ch,
		exchange: rc.Exchange,
		log:      helper,
	}, cleanup, nil
}

// PublishReport 发布模板测试完成事件，消息体为 protobuf 编码的 Struct
func (p *mqPublisher) PublishReport(ctx context.Context, report *biz.TemplateReport) error {
	event, err := reportEvent(report)
	if err != nil {
		p.log.Errorf("build event failed: %v", err)
		return err
	}
	body, err := proto.Marshal(event)
	if err != nil {
		p.log.Errorf("marshal event failed: %v", err)
		return err
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKeyTemplateCompleted,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/x-protobuf",
			Type:         "google.protobuf.Struct",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.log.Errorf("publish message failed: id=%d err=%v", report.ID, err)
		return err
	}
	p.log.Infof("template report published: id=%d size=%d bytes", report.ID, len(body))
	return nil
}

// reportEvent 报告摘要，直方图只保留参与卡方检验的分组
func reportEvent(report *biz.TemplateReport) (*structpb.Struct, error) {
	bins := report.ChiSq.Bins
	if bins == 0 || bins > len(report.Matches) {
		bins = len(report.Matches)
	}
	matches := make([]interface{}, bins)
	for i := range matches {
		matches[i] = report.Matches[i]
	}
	fields := map[string]interface{}{
		"event_type":  "TEMPLATE_COMPLETED",
		"run_id":      report.ID,
		"size":        report.Size,
		"samples":     report.Samples,
		"seed":        []interface{}{report.Seed[0], report.Seed[1], report.Seed[2]},
		"matches":     matches,
		"wrap_around": report.WrapAround,
		"chisq":       report.ChiSq.Stat,
		"df":          report.ChiSq.DF,
		"pvalue":      report.ChiSq.PValue,
		"alpha":       report.Alpha,
		"pass":        report.Pass,
		"elapsed_ms":  report.Elapsed.Milliseconds(),
		"timestamp":   report.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if report.WrapAround {
		fields["wrap_sample"] = report.WrapSample
	}
	return structpb.NewStruct(fields)
}

// noopMQPublisher 空实现（RabbitMQ 未配置或连接失败时使用）
type noopMQPublisher struct {
	log *log.Helper
}

func (p *noopMQPublisher) PublishReport(ctx context.Context, report *biz.TemplateReport) error {
	if p.log != nil {
		p.log.Warnf("mq publisher not available, skipping event: id=%d", report.ID)
	}
	return nil
}
