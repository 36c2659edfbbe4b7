package pointcloud

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

/*
Package pointcloud interprets the opaque data buffer of a point cloud
according to a runtime-supplied field layout. The buffer's internal layout is
externally defined: fields are located purely by declared offset, scalars are
packed at their natural widths with no padding rule, and bytes between
declared field regions are never interpreted. Byte order inside the buffer is
controlled solely by the cloud's big-endian flag, independent of whatever
envelope encoding carried the enclosing message.
*/

////////////////////////////////////////////////////////////////////////////////

// Datatype tags, as carried in sensor_msgs/msg/PointField.
const (
	INT8 uint8 = iota + 1
	UINT8
	INT16
	UINT16
	INT32
	UINT32
	FLOAT32
	FLOAT64
)

// scalar widths indexed by datatype tag
var datatypeSizes = [9]int{0, 1, 1, 2, 2, 4, 4, 4, 8} // nolint:gochecknoglobals

// Field describes one named value within a fixed-size point record.
type Field struct {
	Name     string
	Offset   uint32
	Datatype uint8
	Count    uint32
}

// Cloud is the layout and payload of a point cloud, as carried by a
// sensor_msgs/msg/PointCloud2 message.
type Cloud struct {
	Fields    []Field
	Height    uint32
	Width     uint32
	BigEndian bool
	PointStep uint32
	RowStep   uint32
	Data      []byte
}

// Point maps a field name, suffixed with its repeat index past the first, to
// a decoded scalar value.
type Point map[string]float64

////////////////////////////////////////////////////////////////////////////////

// FromMessage extracts a Cloud from a decoded sensor_msgs/msg/PointCloud2
// record.
func FromMessage(record map[string]any) (*Cloud, error) {
	cloud := &Cloud{}
	var ok bool
	if cloud.Height, ok = record["height"].(uint32); !ok {
		return nil, fmt.Errorf("missing or malformed height")
	}
	if cloud.Width, ok = record["width"].(uint32); !ok {
		return nil, fmt.Errorf("missing or malformed width")
	}
	if cloud.BigEndian, ok = record["is_bigendian"].(bool); !ok {
		return nil, fmt.Errorf("missing or malformed is_bigendian")
	}
	if cloud.PointStep, ok = record["point_step"].(uint32); !ok {
		return nil, fmt.Errorf("missing or malformed point_step")
	}
	if cloud.RowStep, ok = record["row_step"].(uint32); !ok {
		return nil, fmt.Errorf("missing or malformed row_step")
	}
	if cloud.Data, ok = record["data"].([]byte); !ok {
		return nil, fmt.Errorf("missing or malformed data")
	}
	fields, ok := record["fields"].([]any)
	if !ok {
		return nil, fmt.Errorf("missing or malformed fields")
	}
	for i, element := range fields {
		field, ok := element.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("malformed field %d", i)
		}
		f := Field{}
		if f.Name, ok = field["name"].(string); !ok {
			return nil, fmt.Errorf("missing or malformed name in field %d", i)
		}
		if f.Offset, ok = field["offset"].(uint32); !ok {
			return nil, fmt.Errorf("missing or malformed offset in field %d", i)
		}
		if f.Datatype, ok = field["datatype"].(uint8); !ok {
			return nil, fmt.Errorf("missing or malformed datatype in field %d", i)
		}
		if f.Count, ok = field["count"].(uint32); !ok {
			return nil, fmt.Errorf("missing or malformed count in field %d", i)
		}
		cloud.Fields = append(cloud.Fields, f)
	}
	return cloud, nil
}

// Points decodes the cloud's data buffer into width*height point records in
// row-major order. Unknown datatype tags are skipped. A field whose declared
// region exceeds the point step, or a grid whose extent passes the end of
// the data, fails the decode. A zero width or height yields an empty
// sequence regardless of the field descriptors.
func (c *Cloud) Points() ([]Point, error) {
	total := uint64(c.Width) * uint64(c.Height)
	if total == 0 {
		return []Point{}, nil
	}
	order := binary.ByteOrder(binary.LittleEndian)
	if c.BigEndian {
		order = binary.BigEndian
	}
	for _, field := range c.Fields {
		if field.Datatype < INT8 || field.Datatype > FLOAT64 {
			continue
		}
		width := datatypeSizes[field.Datatype]
		if int(field.Offset)+width*int(field.Count) > int(c.PointStep) {
			return nil, NewFieldOutOfBoundsError(field.Name, "field region exceeds point step")
		}
	}
	// The header dimensions are untrusted: their products overflow int, so
	// the extent arithmetic is done in uint64 and the grid is validated
	// against the data before anything is allocated. Rows may not overlap,
	// and every read falls within [base, base+PointStep), so a grid whose
	// last point's region fits bounds every read up front.
	if c.PointStep == 0 {
		return nil, NewFieldOutOfBoundsError("", "zero point step")
	}
	rowExtent := uint64(c.Width) * uint64(c.PointStep)
	if c.Height > 1 && uint64(c.RowStep) < rowExtent {
		return nil, NewFieldOutOfBoundsError("", "row step smaller than row extent")
	}
	if uint64(c.Height-1)*uint64(c.RowStep)+rowExtent > uint64(len(c.Data)) {
		return nil, NewFieldOutOfBoundsError("", "declared extent exceeds data")
	}
	points := make([]Point, 0, int(total))
	for row := 0; row < int(c.Height); row++ {
		for col := 0; col < int(c.Width); col++ {
			base := row*int(c.RowStep) + col*int(c.PointStep)
			point, err := c.parsePoint(order, base)
			if err != nil {
				return nil, err
			}
			points = append(points, point)
		}
	}
	return points, nil
}

func (c *Cloud) parsePoint(order binary.ByteOrder, base int) (Point, error) {
	point := make(Point, len(c.Fields))
	for _, field := range c.Fields {
		if field.Datatype < INT8 || field.Datatype > FLOAT64 {
			continue
		}
		width := datatypeSizes[field.Datatype]
		for i := 0; i < int(field.Count); i++ {
			start := base + int(field.Offset) + i*width
			if start+width > len(c.Data) {
				return nil, NewFieldOutOfBoundsError(field.Name, "read past end of data")
			}
			value := readScalar(order, field.Datatype, c.Data[start:start+width])
			if i == 0 {
				point[field.Name] = value
				continue
			}
			point[field.Name+strconv.Itoa(i)] = value
		}
	}
	return point, nil
}

func readScalar(order binary.ByteOrder, datatype uint8, data []byte) float64 {
	switch datatype {
	case INT8:
		return float64(int8(data[0]))
	case UINT8:
		return float64(data[0])
	case INT16:
		return float64(int16(order.Uint16(data)))
	case UINT16:
		return float64(order.Uint16(data))
	case INT32:
		return float64(int32(order.Uint32(data)))
	case UINT32:
		return float64(order.Uint32(data))
	case FLOAT32:
		return float64(math.Float32frombits(order.Uint32(data)))
	case FLOAT64:
		return math.Float64frombits(order.Uint64(data))
	default:
		return 0
	}
}
