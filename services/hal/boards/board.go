package boards

// Board describes the wiring of one PCB: which GPIOs carry the four LED
// channels, the button, the EEPROM bus and the diagnostic UART.
// Numbers are plain GPIO numbers; mapping to machine.Pin happens in hal.
type Board struct {
	Name string

	// Channel order G, R, B, W.
	Channels [4]int
	Button   int

	// AT24Cxx EEPROM holding the mode byte.
	I2C        string // "i2c0" or "i2c1"
	SDA, SCL   int
	I2CHz      uint32
	EEPROMAddr uint16

	// Diagnostic serial.
	UART   string // "uart0" or "uart1"
	TX, RX int
	Baud   uint32
}

// PicoLED4 is the four-channel driver carrier for the Raspberry Pi Pico.
// GP2..GP5 sit on PWM slices 1 and 2 so both slices share one frequency.
var PicoLED4 = Board{
	Name:       "pico_led4",
	Channels:   [4]int{2, 3, 4, 5},
	Button:     15,
	I2C:        "i2c1",
	SDA:        6,
	SCL:        7,
	I2CHz:      400_000,
	EEPROMAddr: 0x50,
	UART:       "uart0",
	TX:         0,
	RX:         1,
	Baud:       115200,
}
