// Package snowflake реализует генератор уникальных 64-битных идентификаторов,
// упорядоченных по времени.
//
// Раскладка бит (старший бит знака всегда 0):
//
//	41 бит — миллисекунды от настроенной эпохи
//	 5 бит — идентификатор воркера (0..31)
//	 5 бит — идентификатор процесса (0..31)
//	12 бит — счётчик внутри миллисекунды (0..4095)
package snowflake

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	workerBits   = 5
	processBits  = 5
	sequenceBits = 12

	maxWorkerID  = (1 << workerBits) - 1
	maxProcessID = (1 << processBits) - 1
	maxSequence  = (1 << sequenceBits) - 1

	processShift   = sequenceBits
	workerShift    = sequenceBits + processBits
	timestampShift = sequenceBits + processBits + workerBits
)

// ErrClockSkew возвращается, когда системные часы ушли назад относительно
// момента выдачи предыдущего идентификатора
var ErrClockSkew = errors.New("clock moved backwards")

// Generator выдаёт уникальные идентификаторы. Все вызовы Generate
// сериализуются мьютексом: счётчик и отметка времени — единственное
// разделяемое изменяемое состояние сервиса.
type Generator struct {
	mu            sync.Mutex
	epoch         int64
	workerID      int64
	processID     int64
	sequence      int64
	lastTimestamp int64
}

// Parts содержит разобранные поля идентификатора
type Parts struct {
	Timestamp int64
	WorkerID  int64
	ProcessID int64
	Sequence  int64
}

// New создаёт новый Generator с заданной эпохой (мс Unix-времени)
// и парой воркер/процесс
func New(epochMs, workerID, processID int64) (*Generator, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, fmt.Errorf("worker ID %d out of range [0, %d]", workerID, maxWorkerID)
	}
	if processID < 0 || processID > maxProcessID {
		return nil, fmt.Errorf("process ID %d out of range [0, %d]", processID, maxProcessID)
	}
	return &Generator{
		epoch:     epochMs,
		workerID:  workerID,
		processID: processID,
	}, nil
}

// Generate возвращает следующий идентификатор. Значения строго возрастают:
// внутри одной миллисекунды за счёт счётчика, между миллисекундами за счёт
// отметки времени. При переполнении счётчика вызов ждёт следующего тика
// часов; при уходе часов назад возвращается ErrClockSkew.
func (g *Generator) Generate() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli() - g.epoch
	if now < g.lastTimestamp {
		return 0, fmt.Errorf("%w: last=%d now=%d", ErrClockSkew, g.lastTimestamp, now)
	}

	if now == g.lastTimestamp {
		g.sequence++
		if g.sequence > maxSequence {
			// Счётчик исчерпан, ждём следующую миллисекунду
			for now <= g.lastTimestamp {
				now = time.Now().UnixMilli() - g.epoch
			}
			g.sequence = 0
		}
	} else {
		g.sequence = 0
	}
	g.lastTimestamp = now

	id := now<<timestampShift |
		g.workerID<<workerShift |
		g.processID<<processShift |
		g.sequence
	return id, nil
}

// Decompose разбирает идентификатор на поля. Отметка времени возвращается
// в миллисекундах Unix-времени с учётом эпохи генератора.
func (g *Generator) Decompose(id int64) Parts {
	return Parts{
		Timestamp: id>>timestampShift + g.epoch,
		WorkerID:  id >> workerShift & maxWorkerID,
		ProcessID: id >> processShift & maxProcessID,
		Sequence:  id & maxSequence,
	}
}
