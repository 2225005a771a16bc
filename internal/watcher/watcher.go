// internal/watcher/watcher.go
// 名單檔案監看 - 新增收件人時立即寄送

package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// 編輯器存檔常是多個事件連發，小延遲合併成一次觸發
const debounceDelay = 500 * time.Millisecond

// Watcher 名單檔案監看器
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Start 監看名單檔案，內容變動時執行 onChange
// 監看的是父目錄而非檔案本身：多數編輯器以 rename 取代原檔，
// 直接監看檔案會在第一次存檔後失效
func Start(csvPath string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	abs, err := filepath.Abs(csvPath)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{fsw: fsw, done: make(chan struct{})}
	go w.loop(abs, onChange)

	log.Printf("[watch] watching %s", abs)
	return w, nil
}

func (w *Watcher) loop(target string, onChange func()) {
	var timer *time.Timer
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				log.Printf("[watch] %s changed, dispatching pending recipients", filepath.Base(target))
				onChange()
			})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("[watch] error: %v", err)
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Stop 停止監看
func (w *Watcher) Stop() {
	close(w.done)
	w.fsw.Close()
}
