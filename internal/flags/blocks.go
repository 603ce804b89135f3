package flags

import (
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// Block names one column of the long layout.
type Block int

// Available Block values.
const (
	BlockPermission Block = iota
	BlockUser
	BlockGroup
	BlockSize
	BlockDate
	BlockName
	BlockInode
)

// String returns the column name as it appears in documents and headers.
func (b Block) String() string {
	switch b {
	case BlockPermission:
		return "permission"
	case BlockUser:
		return "user"
	case BlockGroup:
		return "group"
	case BlockSize:
		return "size"
	case BlockDate:
		return "date"
	case BlockName:
		return "name"
	case BlockInode:
		return "inode"
	}

	return "name"
}

func parseBlock(value string) (Block, bool) {
	switch value {
	case "permission":
		return BlockPermission, true
	case "user":
		return BlockUser, true
	case "group":
		return BlockGroup, true
	case "size":
		return BlockSize, true
	case "date":
		return BlockDate, true
	case "name":
		return BlockName, true
	case "inode":
		return BlockInode, true
	}

	return BlockName, false
}

func parseBlocks(values []string) ([]Block, string, bool) {
	blocks := make([]Block, 0, len(values))
	for _, value := range values {
		block, ok := parseBlock(value)
		if !ok {
			return nil, value, false
		}
		blocks = append(blocks, block)
	}

	return blocks, "", true
}

func blocksFromArgs(fs *pflag.FlagSet) ([]Block, bool) {
	if !changed(fs, "blocks") {
		return nil, false
	}

	values, err := fs.GetStringSlice("blocks")
	if err != nil {
		return nil, false
	}

	blocks, _, ok := parseBlocks(values)
	if !ok {
		return nil, false
	}

	return blocks, true
}

// blocksFromConfig accepts the list only as a whole: one unknown column name
// invalidates the document's ordering, which then falls through.
func blocksFromConfig(cfg *config.Config) ([]Block, bool) {
	if len(cfg.Blocks) == 0 {
		return nil, false
	}

	blocks, bad, ok := parseBlocks(cfg.Blocks)
	if !ok {
		reportBadValue(cfg, "blocks", bad, "permission, user, group, size, date, name, inode")
		return nil, false
	}

	return blocks, true
}

func defaultBlocks() []Block {
	return []Block{BlockPermission, BlockUser, BlockGroup, BlockSize, BlockDate, BlockName}
}
