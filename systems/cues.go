package systems

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/screenmenu/components"
	"github.com/automoto/screenmenu/shared/netcomponents"
)

const (
	sampleRate   = 44100
	toneDuration = 0.08 // seconds
)

// Global audio state - created once and shared
var (
	globalAudioContext *audio.Context
	globalCueVolume    = 1.0
	toneCache          = map[string][]byte{}
	audioInitOnce      sync.Once
)

var cueFrequencies = map[string]float64{
	"menu.Select":     880,
	"menu.Close":      440,
	"menu.ScrollUp":   660,
	"menu.ScrollDown": 587,
}

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(sampleRate)
	})
}

// SetCueVolume sets the volume every cue is played at (0-1).
func SetCueVolume(v float64) {
	globalCueVolume = math.Max(0, math.Min(1, v))
}

// UpdateCues plays the HUD cue whenever its sequence number moves.
func UpdateCues(e *ecs.ECS) {
	initGlobalAudio()

	viewer, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	hud, ok := netcomponents.NetHUD.First(e.World)
	if !ok {
		return
	}
	v := components.Viewer.Get(viewer)
	h := netcomponents.NetHUD.Get(hud)
	if h.CueSeq == v.CueSeq {
		return
	}
	v.CueSeq = h.CueSeq
	if h.Cue != "" {
		playCue(h.Cue)
	}
}

func playCue(name string) {
	if globalCueVolume <= 0 {
		return
	}
	pcm, ok := toneCache[name]
	if !ok {
		pcm = synthTone(cueFrequency(name))
		toneCache[name] = pcm
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalCueVolume)
	player.Play()
}

// cueFrequency picks a stable pitch for cue names without a fixed one.
func cueFrequency(name string) float64 {
	if f, ok := cueFrequencies[name]; ok {
		return f
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return 300 + float64(h.Sum32()%600)
}

// synthTone renders a short sine blip as 16-bit little-endian stereo PCM.
func synthTone(freq float64) []byte {
	n := int(sampleRate * toneDuration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := 1 - float64(i)/float64(n)
		s := int16(math.Sin(2*math.Pi*freq*t) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
