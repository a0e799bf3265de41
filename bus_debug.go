package rng90

type busDebug struct {
	id   string
	l    Logger
	next Bus
}

func (b *busDebug) Start() error {
	err := b.next.Start()
	b.l.Printf("%5s >>  start %+v", b.id, err)
	return err
}

func (b *busDebug) Stop() error {
	err := b.next.Stop()
	b.l.Printf("%5s >>  stop %+v", b.id, err)
	return err
}

func (b *busDebug) Address(addr uint16, dir Direction) error {
	err := b.next.Address(addr, dir)
	b.l.Printf("%5s >>  addr %#02x %s %+v", b.id, addr, dir, err)
	return err
}

func (b *busDebug) WriteByte(p byte) error {
	err := b.next.WriteByte(p)
	b.l.Printf("%5s >>  send %02x %+v", b.id, p, err)
	return err
}

func (b *busDebug) ReadByte(ack bool) (byte, error) {
	p, err := b.next.ReadByte(ack)
	b.l.Printf("%5s <<  recv %02x ack=%t %+v", b.id, p, ack, err)
	return p, err
}
