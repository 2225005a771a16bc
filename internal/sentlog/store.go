// internal/sentlog/store.go
// 寄送紀錄儲存 - 單一 JSON 檔案，每次更新原子性覆寫

package sentlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// 紀錄狀態
const (
	StatusSent  = "sent"
	StatusError = "error"
)

// Entry 單一收件人的寄送紀錄
// 除了 status / sentAt / errorAt 之外允許任意診斷欄位 (messageId、error、source 等)，
// 所以用 map 而非固定結構，合併時新欄位覆寫、其餘保留
type Entry map[string]any

// Status 取得紀錄狀態
func (e Entry) Status() string {
	s, _ := e["status"].(string)
	return s
}

// Store 寄送紀錄儲存
// 每次讀寫都完整載入再寫回，不在程序內快取；
// 內部鎖強制序列化所有變更，避免多個觸發來源同時寫入造成更新遺失
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore 建立綁定檔案路徑的 Store
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load 載入完整紀錄；檔案不存在時回傳空紀錄
func (s *Store) Load() (map[string]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// IsSent 該 email 是否已成功寄出
func (s *Store) IsSent(email string) (bool, error) {
	log, err := s.Load()
	if err != nil {
		return false, err
	}
	return log[email].Status() == StatusSent, nil
}

// MarkSent 標記寄送成功
func (s *Store) MarkSent(email string, details Entry) error {
	merged := Entry{}
	for k, v := range details {
		merged[k] = v
	}
	merged["status"] = StatusSent
	merged["sentAt"] = time.Now().UTC().Format(time.RFC3339)
	return s.upsert(email, merged)
}

// MarkError 標記寄送失敗
func (s *Store) MarkError(email string, details Entry) error {
	merged := Entry{}
	for k, v := range details {
		merged[k] = v
	}
	merged["status"] = StatusError
	merged["errorAt"] = time.Now().UTC().Format(time.RFC3339)
	return s.upsert(email, merged)
}

// upsert 讀取-合併-寫回；新欄位覆寫同 key 既有欄位，其餘欄位保留
func (s *Store) upsert(email string, details Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.read()
	if err != nil {
		return err
	}

	entry := log[email]
	if entry == nil {
		entry = Entry{}
	}
	for k, v := range details {
		entry[k] = v
	}
	log[email] = entry

	return s.write(log)
}

func (s *Store) read() (map[string]Entry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Entry{}, nil
		}
		return nil, fmt.Errorf("read sent log: %w", err)
	}

	log := map[string]Entry{}
	if len(raw) == 0 {
		return log, nil
	}
	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, fmt.Errorf("parse sent log: %w", err)
	}
	return log, nil
}

// write 先寫暫存檔再 rename，中途當機不會留下壞掉的紀錄檔
func (s *Store) write(log map[string]Entry) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sent log: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create sent log dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp sent log: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write sent log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp sent log: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace sent log: %w", err)
	}
	return nil
}
