package regops

type OpKind uint8

const (
	OP_READ_32  OpKind = 0x00
	OP_WRITE_32 OpKind = 0x01
	OP_READ_64  OpKind = 0x02
	OP_WRITE_64 OpKind = 0x03
)

type Type uint8

const (
	TYPE_GLOBAL      Type = 0x00
	TYPE_GR_CTX      Type = 0x01
	TYPE_GR_CTX_TPC  Type = 0x02
	TYPE_GR_CTX_SM   Type = 0x04
	TYPE_GR_CTX_CROP Type = 0x08
	TYPE_GR_CTX_ZROP Type = 0x10
	TYPE_GR_CTX_QUAD Type = 0x40
)

// Status bits are part of the debugger ABI. STATUS_SUCCESS is zero, so an
// operation that was never visited is indistinguishable from a successful
// one by its status alone.
type Status uint8

const (
	STATUS_SUCCESS        Status = 0x00
	STATUS_INVALID_OP     Status = 0x01
	STATUS_INVALID_TYPE   Status = 0x02
	STATUS_INVALID_OFFSET Status = 0x04
	STATUS_UNSUPPORTED_OP Status = 0x08
	STATUS_INVALID_MASK   Status = 0x10
)

type Mode uint32

const (
	MODE_ALL_OR_NONE       Mode = 0
	MODE_CONTINUE_ON_ERROR Mode = 1
)

// Op mirrors the debugger's register operation record field for field.
type Op struct {
	Kind         OpKind
	Type         Type
	Status       Status
	Quad         uint8
	GroupMask    uint32
	SubGroupMask uint32
	Offset       uint32
	ValueLo      uint32
	ValueHi      uint32
	MaskLo       uint32
	MaskHi       uint32
}

func (k OpKind) IsRead() bool {
	return k == OP_READ_32 || k == OP_READ_64
}

func (k OpKind) Is64() bool {
	return k == OP_READ_64 || k == OP_WRITE_64
}

func (k OpKind) Valid() bool {
	switch k {
	case OP_READ_32, OP_WRITE_32, OP_READ_64, OP_WRITE_64:
		return true
	}
	return false
}

func (k OpKind) String() string {
	switch k {
	case OP_READ_32:
		return "read_32"
	case OP_WRITE_32:
		return "write_32"
	case OP_READ_64:
		return "read_64"
	case OP_WRITE_64:
		return "write_64"
	}
	return "unknown"
}

// IsGrCtx reports whether the operation targets saved context state.
func (t Type) IsGrCtx() bool {
	switch t {
	case TYPE_GR_CTX, TYPE_GR_CTX_TPC, TYPE_GR_CTX_SM, TYPE_GR_CTX_CROP, TYPE_GR_CTX_ZROP, TYPE_GR_CTX_QUAD:
		return true
	}
	return false
}

func (t Type) Valid() bool {
	return t == TYPE_GLOBAL || t.IsGrCtx()
}

func (t Type) String() string {
	switch t {
	case TYPE_GLOBAL:
		return "global"
	case TYPE_GR_CTX:
		return "gr_ctx"
	case TYPE_GR_CTX_TPC:
		return "gr_ctx_tpc"
	case TYPE_GR_CTX_SM:
		return "gr_ctx_sm"
	case TYPE_GR_CTX_CROP:
		return "gr_ctx_crop"
	case TYPE_GR_CTX_ZROP:
		return "gr_ctx_zrop"
	case TYPE_GR_CTX_QUAD:
		return "gr_ctx_quad"
	}
	return "unknown"
}

func (s Status) String() string {
	if s == STATUS_SUCCESS {
		return "success"
	}
	var str string
	for _, b := range [...]struct {
		bit  Status
		name string
	}{
		{STATUS_INVALID_OP, "invalid_op"},
		{STATUS_INVALID_TYPE, "invalid_type"},
		{STATUS_INVALID_OFFSET, "invalid_offset"},
		{STATUS_UNSUPPORTED_OP, "unsupported_op"},
		{STATUS_INVALID_MASK, "invalid_mask"},
	} {
		if s&b.bit != 0 {
			if str != "" {
				str += "|"
			}
			str += b.name
		}
	}
	if str == "" {
		return "unknown"
	}
	return str
}

func (m Mode) String() string {
	switch m {
	case MODE_ALL_OR_NONE:
		return "all_or_none"
	case MODE_CONTINUE_ON_ERROR:
		return "continue_on_error"
	}
	return "unknown"
}
