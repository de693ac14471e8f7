package ptp

// Transport is the capability Engine is parameterized over: issuing
// one PTP command and awaiting its complete reply. Engine performs no
// suspension beyond this call; a Transport may represent PTP/IP over
// TCP, PTP over USB/serial, or an in-memory fake for tests.
type Transport interface {
	// SendCommand issues one PTP command and blocks until the complete
	// reply is available. params holds 0-5 operation parameters.
	// sendData, when non-nil, is written during the command's Data
	// phase; recvCapacity bounds how many bytes of reply Data phase
	// are returned. resultCode is the raw PTP Response-phase code.
	//
	// A transport-level failure (I/O error, closed connection) is
	// returned as a non-nil error, never encoded as a resultCode;
	// Engine wraps such an error in an *Error of Kind TransportError.
	SendCommand(opcode uint16, params []uint32, sendData []byte, recvCapacity uint32) (resultCode uint32, recvData []byte, err error)
}

// Logger is the optional debug sink an Engine may be constructed with.
// A nil Logger disables logging entirely; Engine never requires one.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// NopLogger discards every message. It is the Engine's default when
// constructed without an explicit Logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
