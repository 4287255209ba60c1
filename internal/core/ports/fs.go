package ports

import "os"

type FileSystemPort interface {
	ReadFile(filePath string) ([]byte, error)
	Open(filePath string) (*os.File, error)
	Exists(filePath string) (bool, error)
}
