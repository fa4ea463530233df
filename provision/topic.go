package provision

import (
	"fmt"
	"strings"

	"github.com/aalemi-dev/eventportal/eventportal"
)

// ParseTopic splits a topic such as "orders/{region}/created" into address
// levels. Segments wrapped in braces become variable levels named after
// their content; every other segment is a literal.
func ParseTopic(topic string) ([]eventportal.AddressLevel, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("%w: topic is empty", ErrInvalidPlan)
	}

	segments := strings.Split(topic, "/")
	levels := make([]eventportal.AddressLevel, 0, len(segments))
	for i, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: topic %q has an empty level at position %d", ErrInvalidPlan, topic, i)
		}

		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			name := strings.TrimSpace(segment[1 : len(segment)-1])
			if name == "" {
				return nil, fmt.Errorf("%w: topic %q has an unnamed variable at position %d", ErrInvalidPlan, topic, i)
			}
			levels = append(levels, eventportal.AddressLevel{Name: name, AddressLevelType: eventportal.AddressLevelVariable})
			continue
		}

		if strings.ContainsAny(segment, "{}") {
			return nil, fmt.Errorf("%w: topic %q level %q mixes literal text and a variable", ErrInvalidPlan, topic, segment)
		}
		levels = append(levels, eventportal.AddressLevel{Name: segment, AddressLevelType: eventportal.AddressLevelLiteral})
	}
	return levels, nil
}
