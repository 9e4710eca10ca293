package alloc

import (
	"math"
	"os"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-adt/internal/utils"
)

var _ Allocator[int] = Mmap[int]{}

// Mmap allocates blocks in memory-mapped regions outside the Go heap. With
// an empty Dir the regions are anonymous, otherwise every block is backed by
// a temporary file in Dir that is removed again when the block is freed.
// The provided type (`T`) MUST NOT contain any pointer nor slice, as the
// garbage collector never scans mapped memory; such types are refused.
type Mmap[T any] struct {
	Dir      string
	MaxItems int
}

func (m Mmap[T]) Alloc(n int) (Block[T], error) {
	itemSize := utils.SizeOf[T]()

	if itemSize <= 0 {
		return nil, ErrZeroSize
	}

	if utils.HasPointers[T]() {
		return nil, errors.Wrapf(ErrPointerType, "%s", reflect.TypeFor[T]())
	}

	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "alloc %d items", n)
	}

	if (m.MaxItems > 0 && n > m.MaxItems) || n > math.MaxInt/itemSize {
		return nil, errors.Wrapf(ErrOutOfMemory, "alloc %d items of %d bytes", n, itemSize)
	}

	blk := new(mmapBlock[T])

	// Zero-length mappings are rejected by the kernel
	if n == 0 {
		return blk, nil
	}

	size := n * itemSize

	if err := blk.mapRegion(m.Dir, size); err != nil {
		return nil, errors.WithSecondaryError(errors.Wrapf(ErrOutOfMemory, "map %d bytes", size), err)
	}

	blk.items = utils.BytesToSlice[T](blk.data, n)
	return blk, nil
}

type mmapBlock[T any] struct {
	data  mmap.MMap
	file  *os.File
	items []T
}

func (b *mmapBlock[T]) mapRegion(dir string, size int) (err error) {
	if dir == "" {
		b.data, err = mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
		return
	}

	if b.file, err = os.CreateTemp(dir, "block-*.bin"); err != nil {
		return
	}

	if err = b.file.Truncate(int64(size)); err == nil {
		if b.data, err = mmap.Map(b.file, mmap.RDWR, 0); err == nil {
			return
		}
	}

	return errors.CombineErrors(err, b.removeFile())
}

func (b *mmapBlock[T]) Items() []T {
	return b.items
}

func (b *mmapBlock[T]) Free() (err error) {
	b.items = nil

	if b.data != nil {
		err = b.data.Unmap()
		b.data = nil
	}

	return errors.CombineErrors(err, b.removeFile())
}

func (b *mmapBlock[T]) removeFile() (err error) {
	if b.file == nil {
		return
	}

	name := b.file.Name()
	err = errors.CombineErrors(b.file.Close(), os.Remove(name))
	b.file = nil
	return
}
