package storage

// DefaultMaxLineSize is the longest line ReadAll accepts (1MB).
// DefaultMaxLineSize 是 ReadAll 接受的最长行（1MB）。
const DefaultMaxLineSize = 1024 * 1024

// Store is the persistence port behind the journal: one text line per record.
// Implementations are not safe for use by several processes at once.
// Store 是日志服务背后的持久化端口：每条记录一行文本。
// 实现不保证多进程同时使用的安全性。
type Store interface {
	// ReadAll returns every stored line without its terminator.
	// A store that was never written to returns no lines and no error.
	// ReadAll 返回所有已存储的行（不含行尾）。从未写入的存储返回空且无错误。
	ReadAll() ([]string, error)

	// Append adds one line, creating the store on first use.
	// Append 追加一行，首次使用时创建存储。
	Append(line string) error

	// Truncate removes every line. It fails with ErrLogNotFound if the store does not exist.
	// Truncate 删除所有行。存储不存在时返回 ErrLogNotFound。
	Truncate() error

	// Exists reports whether the store has been created.
	// Exists 报告存储是否已创建。
	Exists() (bool, error)

	// Path identifies the store (a file path for FileStore).
	// Path 标识存储（FileStore 为文件路径）。
	Path() string
}
