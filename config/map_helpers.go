package config

// mp is used to provide helper methods on the map type we use most often
// this cleans up a lot of excessive type assertion stuff.
type mp map[string]interface{}

func intfToMp(intf interface{}) mp {
	switch v := intf.(type) {
	case map[string]interface{}:
		return v
	case mp:
		return v
	}
	return nil
}

func (m mp) get(name string) mp {
	if m == nil {
		return nil
	}

	if mpVal, ok := m[name]; ok {
		return intfToMp(mpVal)
	}

	return nil
}

func (m mp) getArr(name string) []map[string]interface{} {
	if m == nil {
		return nil
	}

	if mpVal, ok := m[name]; ok {
		switch v := mpVal.(type) {
		case []map[string]interface{}:
			return v
		}
	}

	return nil
}

type mapGetter interface {
	get(string) (interface{}, bool)
	getParent(string) (interface{}, bool)
	rlock()
	runlock()
}

type mapSetter interface {
	set(string, interface{})
	lock()
	unlock()
}

func setVal(m mapSetter, key string, value interface{}) {
	m.lock()
	m.set(key, value)
	m.unlock()
}

// lookup finds key in m, then in its parents if fallback is set.
func lookup(m mapGetter, key string, fallback bool) (interface{}, bool) {
	val, ok := m.get(key)
	if !ok && fallback {
		val, ok = m.getParent(key)
	}
	return val, ok
}

// getStr gets a string out of a map.
func getStr(m mapGetter, key string, fallback bool) (string, bool) {
	m.rlock()
	defer m.runlock()

	val, ok := lookup(m, key, fallback)
	if !ok {
		return "", false
	}

	if str, ok := val.(string); ok {
		return str, true
	}

	return "", false
}

// getBool gets a bool out of a map.
func getBool(m mapGetter, key string, fallback bool) (bool, bool) {
	m.rlock()
	defer m.runlock()

	val, ok := lookup(m, key, fallback)
	if !ok {
		return false, false
	}

	if boolval, ok := val.(bool); ok {
		return boolval, true
	}

	return false, false
}

// getInt gets an int out of a map.
func getInt(m mapGetter, key string, fallback bool) (int, bool) {
	m.rlock()
	defer m.runlock()

	val, ok := lookup(m, key, fallback)
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int64: // After a toml parse.
		return int(v), true
	case int: // After a yaml parse or a set.
		return v, true
	}

	return 0, false
}
